package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService validates shell input and delegates to the task repository.
type taskService struct {
	taskRepository store.TaskRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		validator:      validators.NewTaskValidator(),
		logger:         logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context, userID int64, status *models.CompletionStatus) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	filter := models.TaskFilter{UserID: userID, CompletionStatus: status}
	if err := s.validator.Validate(ctx, filter); err != nil {
		log.Warn().Err(err).Str("func", "*taskService.ListTasks").Msg("invalid filter")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tasks, err := s.taskRepository.GetUserTasks(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*taskService.ListTasks").Int64("user_id", userID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

func (s *taskService) ListUncompletedTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := s.ListTasks(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	uncompleted := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.CompletionStatus != models.StatusCompleted {
			uncompleted = append(uncompleted, task)
		}
	}

	return uncompleted, nil
}

// CreateTask returns ErrInvalidDataProvided for a task failing field rules
// and an error matching store.ErrNoUserWasFound for an unknown owner.
func (s *taskService) CreateTask(ctx context.Context, task models.Task) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, task); err != nil {
		log.Warn().Err(err).Str("func", "*taskService.CreateTask").Msg("invalid task")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	taskID, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("func", "*taskService.CreateTask").Int64("user_id", task.UserID).Msg("task creation failed")
		return 0, fmt.Errorf("task creation failed: %w", err)
	}

	return taskID, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.GetTask").Int64("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// EditTask validates the supplied fields only; omitted fields keep their
// stored values.
func (s *taskService) EditTask(ctx context.Context, update models.TaskUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Warn().Err(err).Str("func", "*taskService.EditTask").Int64("task_id", update.TaskID).Msg("invalid update")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*taskService.EditTask").Int64("task_id", update.TaskID).Msg("task update failed")
		return false, fmt.Errorf("task update failed: %w", err)
	}

	return updated, nil
}

func (s *taskService) RemoveTask(ctx context.Context, taskID int64) (bool, error) {
	deleted, err := s.taskRepository.DeleteTask(ctx, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.RemoveTask").Int64("task_id", taskID).Msg("task removal failed")
		return false, fmt.Errorf("task removal failed: %w", err)
	}

	return deleted, nil
}
