package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the database/sql implementation of [TaskRepository]
// over the "tasks" table. Every record is validated before it is written.
type taskRepository struct {
	db        *DB
	validator validators.Validator
	logger    *logger.Logger
}

func NewTaskRepository(db *DB, validator validators.Validator, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:        db,
		validator: validator,
		logger:    logger,
	}
}

// CreateTask inserts task and returns its new id. A task for an unknown user
// is rejected by the foreign key and reported as [ErrNoUserWasFound].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (int64, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, task); err != nil {
		log.Warn().Err(err).Str("func", "*taskRepository.CreateTask").Msg("invalid task")
		return 0, err
	}

	query, args, err := r.db.buildCreateTaskQuery(task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var taskID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&taskID); err != nil {
		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			log.Warn().Str("func", "*taskRepository.CreateTask").Int64("user_id", task.UserID).Msg("task owner does not exist")
			return 0, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*taskRepository.CreateTask").Int64("user_id", task.UserID).Msg("failed to insert task")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*taskRepository.CreateTask").
		Int64("user_id", task.UserID).
		Int64("task_id", taskID).
		Msg("task created")

	return taskID, nil
}

// GetTask returns the task with the given id or [ErrTaskNotFound].
func (r *taskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetTaskQuery(taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*taskRepository.GetTask").Int64("task_id", taskID).Msg("task not found")
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Int64("task_id", taskID).Msg("failed to query task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// GetUserTasks returns every task of filter.UserID in ascending id order,
// optionally narrowed to one completion status. The result is fully read
// before returning; an empty listing is an empty slice.
func (r *taskRepository) GetUserTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetUserTasksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetUserTasks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetUserTasks").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for getting user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.GetUserTasks").
				Int64("user_id", filter.UserID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.GetUserTasks").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask runs fetch, overlay and full overwrite inside one transaction,
// so an update with no fields rewrites the stored values unchanged.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	selectQuery, selectArgs, err := r.db.buildGetTaskQuery(update.TaskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building select query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	current, err := scanTask(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("task not found, nothing to update")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("failed to read current task")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if update.IsEmpty() {
		log.Debug().Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("no fields set, rewriting stored values")
	}

	merged := update.Apply(current)
	if err = r.validator.Validate(ctx, merged); err != nil {
		log.Warn().Err(err).Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("invalid task after merge")
		return false, err
	}

	updateQuery, updateArgs, err := r.db.buildUpdateTaskQuery(merged)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("failed to execute update")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "*taskRepository.UpdateTask").Int64("task_id", update.TaskID).Msg("task updated")

	return true, nil
}

// DeleteTask removes the task and reports whether it existed.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteTaskQuery(taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Int64("task_id", taskID).Msg("failed to delete task")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Int64("task_id", taskID).Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*taskRepository.DeleteTask").
		Int64("task_id", taskID).
		Int64("rows_affected", affected).
		Msg("delete task finished")

	return affected > 0, nil
}
