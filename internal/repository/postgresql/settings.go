package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// GetAttendancePolicy implements settings.Repository. One query reads
// all policy keys; anything missing or unparseable silently becomes the
// documented default so a broken configuration row cannot stop scans.
func (r *settingsRepository) GetAttendancePolicy(ctx context.Context) (settings.AttendancePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT clave, valor FROM configuraciones
		WHERE clave IN ($1, $2, $3)
	`

	rows, err := q.Query(ctx, query,
		settings.KeyEntryTolerance, settings.KeyExitTolerance, settings.KeyDefaultWorkingDays)
	if err != nil {
		return settings.AttendancePolicy{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var clave, valor string
		if err := rows.Scan(&clave, &valor); err != nil {
			return settings.AttendancePolicy{}, fmt.Errorf("failed to scan configuration row: %w", err)
		}
		values[clave] = valor
	}
	if err := rows.Err(); err != nil {
		return settings.AttendancePolicy{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	policy := settings.AttendancePolicy{
		EntryToleranceMinutes: toleranceOrDefault(values[settings.KeyEntryTolerance], settings.KeyEntryTolerance),
		ExitToleranceMinutes:  toleranceOrDefault(values[settings.KeyExitTolerance], settings.KeyExitTolerance),
		DefaultWorkingDays:    schedule.DefaultWorkingDays(),
	}
	if raw, ok := values[settings.KeyDefaultWorkingDays]; ok {
		if days, parsed := schedule.ParseWeekdaySet(raw); parsed {
			policy.DefaultWorkingDays = days
		} else {
			slog.Warn("malformed default working days configuration", "raw", raw)
		}
	}
	return policy, nil
}

func toleranceOrDefault(raw string, key string) int {
	if raw == "" {
		return settings.DefaultToleranceMinutes
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		slog.Warn("malformed tolerance configuration", "clave", key, "valor", raw)
		return settings.DefaultToleranceMinutes
	}
	return v
}

// Get implements settings.Repository.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var valor string
	err := q.QueryRow(ctx, `SELECT valor FROM configuraciones WHERE clave = $1`, key).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get configuration %q: %w", key, err)
	}
	return valor, nil
}

// Set implements settings.Repository.
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO configuraciones (clave, valor)
		VALUES ($1, $2)
		ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor
	`
	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set configuration %q: %w", key, err)
	}
	return nil
}
