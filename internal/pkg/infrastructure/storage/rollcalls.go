package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddRollCall(ctx context.Context, rollCall types.RollCall) error {
	if rollCall.ID == "" {
		return ErrNoID
	}
	if rollCall.SiteID == "" {
		return ErrMissingSite
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO roll_calls (roll_call_id, incident_id, site_id, initiated_by, status, total_classrooms, total_students, initiated_at)
		VALUES (@roll_call_id, @incident_id, @site_id, @initiated_by, @status, @total_classrooms, @total_students, @initiated_at);
	`, pgx.NamedArgs{
		"roll_call_id":     rollCall.ID,
		"incident_id":      rollCall.IncidentID,
		"site_id":          rollCall.SiteID,
		"initiated_by":     rollCall.InitiatedByID,
		"status":           string(rollCall.Status),
		"total_classrooms": rollCall.TotalClassrooms,
		"total_students":   rollCall.TotalStudents,
		"initiated_at":     rollCall.InitiatedAt.UTC(),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetRollCall(ctx context.Context, conditions ...ConditionFunc) (types.RollCall, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT roll_call_id, incident_id, site_id, initiated_by, status, total_classrooms, total_students, reported_classrooms, accounted_students, initiated_at, completed_at
		FROM roll_calls
		WHERE %s;
	`, condition.Where())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.RollCall{}, err
	}

	rc, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (types.RollCall, error) {
		var r types.RollCall
		err := row.Scan(&r.ID, &r.IncidentID, &r.SiteID, &r.InitiatedByID, &r.Status, &r.TotalClassrooms, &r.TotalStudents, &r.ReportedClassrooms, &r.AccountedStudents, &r.InitiatedAt, &r.CompletedAt)
		return r, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.RollCall{}, ErrNoRows
		}
		return types.RollCall{}, err
	}

	return rc, nil
}

func (s *Storage) UpsertRollCallReport(ctx context.Context, report types.RollCallReport) error {
	missing, err := json.Marshal(report.StudentsMissing)
	if err != nil {
		return err
	}
	injured, err := json.Marshal(report.StudentsInjured)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO roll_call_reports (roll_call_id, user_id, room_id, students_present, students_absent, students_missing, students_injured, notes, reported_at)
		VALUES (@roll_call_id, @user_id, @room_id, @students_present, @students_absent, @students_missing, @students_injured, @notes, @reported_at)
		ON CONFLICT (roll_call_id, user_id) DO UPDATE SET
			room_id = EXCLUDED.room_id,
			students_present = EXCLUDED.students_present,
			students_absent = EXCLUDED.students_absent,
			students_missing = EXCLUDED.students_missing,
			students_injured = EXCLUDED.students_injured,
			notes = EXCLUDED.notes,
			reported_at = EXCLUDED.reported_at;
	`, pgx.NamedArgs{
		"roll_call_id":     report.RollCallID,
		"user_id":          report.UserID,
		"room_id":          report.RoomID,
		"students_present": report.StudentsPresent,
		"students_absent":  report.StudentsAbsent,
		"students_missing": missing,
		"students_injured": injured,
		"notes":            report.Notes,
		"reported_at":      report.ReportedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetRollCallReports(ctx context.Context, rollCallID string) ([]types.RollCallReport, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT roll_call_id, user_id, room_id, students_present, students_absent, students_missing, students_injured, notes, reported_at
		FROM roll_call_reports
		WHERE roll_call_id = @roll_call_id;
	`, pgx.NamedArgs{"roll_call_id": rollCallID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]types.RollCallReport, 0)

	for rows.Next() {
		var r types.RollCallReport
		var missing, injured []byte
		var notes *string

		err = rows.Scan(&r.RollCallID, &r.UserID, &r.RoomID, &r.StudentsPresent, &r.StudentsAbsent, &missing, &injured, &notes, &r.ReportedAt)
		if err != nil {
			return nil, err
		}

		if missing != nil {
			json.Unmarshal(missing, &r.StudentsMissing)
		}
		if injured != nil {
			json.Unmarshal(injured, &r.StudentsInjured)
		}
		if notes != nil {
			r.Notes = *notes
		}

		reports = append(reports, r)
	}

	return reports, nil
}

// UpdateRollCallAggregates overwrites the running totals with values
// recomputed from the full report set.
func (s *Storage) UpdateRollCallAggregates(ctx context.Context, rollCallID string, reportedClassrooms, accountedStudents int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE roll_calls SET reported_classrooms = @reported_classrooms, accounted_students = @accounted_students
		WHERE roll_call_id = @roll_call_id;
	`, pgx.NamedArgs{
		"roll_call_id":        rollCallID,
		"reported_classrooms": reportedClassrooms,
		"accounted_students":  accountedStudents,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) CompleteRollCall(ctx context.Context, rollCallID string, at time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE roll_calls SET status = @completed, completed_at = @at
		WHERE roll_call_id = @roll_call_id AND status = @active;
	`, pgx.NamedArgs{
		"roll_call_id": rollCallID,
		"completed":    string(types.RollCallStatusCompleted),
		"active":       string(types.RollCallStatusActive),
		"at":           at.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}
