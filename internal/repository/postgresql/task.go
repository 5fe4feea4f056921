package postgresql

import (
	"context"
	"errors"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/task"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const taskColumns = `t.id, t.assigner_id, t.assignee_id, t.title, t.description, t.due_date,
			  t.status, t.submission_remarks, t.submitted_at, t.completed_at, t.created_at, t.updated_at`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.AssignerID,
		&t.AssigneeID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&t.SubmissionRemarks,
		&t.SubmittedAt,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	return t, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO tasks AS t (assigner_id, assignee_id, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, insertQuery,
		t.AssignerID,
		t.AssigneeID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Status,
	))
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	return scanTask(q.QueryRow(ctx, query, id))
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4,
			submission_remarks = $5, submitted_at = $6, completed_at = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, updateQuery,
		t.Title,
		t.Description,
		t.DueDate,
		t.Status,
		t.SubmissionRemarks,
		t.SubmittedAt,
		t.CompletedAt,
		t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) list(ctx context.Context, where string, arg interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + `,
			  asg.first_name || ' ' || asg.last_name AS assigner_name,
			  ase.first_name || ' ' || ase.last_name AS assignee_name
		FROM tasks t
		JOIN users asg ON asg.id = t.assigner_id
		JOIN users ase ON ase.id = t.assignee_id
		WHERE ` + where + `
		ORDER BY t.created_at DESC`

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID,
			&t.AssignerID,
			&t.AssigneeID,
			&t.Title,
			&t.Description,
			&t.DueDate,
			&t.Status,
			&t.SubmissionRemarks,
			&t.SubmittedAt,
			&t.CompletedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
			&t.AssignerName,
			&t.AssigneeName,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, assigneeID string) ([]task.Task, error) {
	return r.list(ctx, `t.assignee_id = $1`, assigneeID)
}

// ListByAssigner implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssigner(ctx context.Context, assignerID string) ([]task.Task, error) {
	return r.list(ctx, `t.assigner_id = $1`, assignerID)
}
