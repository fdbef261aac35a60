package fitness

import (
	"context"
	"net/http"
)

// GetTemplates lists the saved workout templates.
func (c *Client) GetTemplates(ctx context.Context) ([]Template, error) {
	var templates []Template
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/templates",
		rel:    endpoint("templates"),
		dest:   &templates,
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate fetches one template by id.
func (c *Client) GetTemplate(ctx context.Context, id string) (Template, error) {
	var template Template
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/templates/{id}",
		rel:    endpoint("templates", id),
		dest:   &template,
	})
	if err != nil {
		return nil, err
	}
	return template, nil
}

// CreateTemplate saves a new template and returns it as stored.
func (c *Client) CreateTemplate(ctx context.Context, template Template) (Template, error) {
	var created Template
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/templates",
		rel:    endpoint("templates"),
		body:   template,
		dest:   &created,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTemplate replaces the template with the given id.
func (c *Client) UpdateTemplate(ctx context.Context, id string, template Template) error {
	return c.do(ctx, call{
		method: http.MethodPut,
		route:  "/templates/{id}",
		rel:    endpoint("templates", id),
		body:   template,
	})
}

// DeleteTemplate removes the template with the given id.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/templates/{id}",
		rel:    endpoint("templates", id),
	})
}
