package fitness

import (
	"context"
	"net/http"
)

// GetExercises lists the exercise library.
func (c *Client) GetExercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/exercises",
		rel:    endpoint("exercises"),
		dest:   &exercises,
	})
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// CreateExercise posts a new exercise.
func (c *Client) CreateExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	var created Exercise
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/exercises",
		rel:    endpoint("exercises"),
		body:   exercise,
		dest:   &created,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateExercise replaces the exercise with id.
func (c *Client) UpdateExercise(ctx context.Context, id string, exercise Exercise) error {
	return c.do(ctx, call{
		method: http.MethodPut,
		route:  "/exercises/{id}",
		rel:    endpoint("exercises", id),
		body:   exercise,
	})
}

// DeleteExercise removes the exercise with id.
func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/exercises/{id}",
		rel:    endpoint("exercises", id),
	})
}
