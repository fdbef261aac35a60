package fitness

import (
	"context"
	"net/http"
	"net/url"
)

// GetCalendarRange lists calendar entries between start and end. Range
// semantics belong to the backend.
func (c *Client) GetCalendarRange(ctx context.Context, start, end string) ([]CalendarEntry, error) {
	values := url.Values{}
	values.Set("start", start)
	values.Set("end", end)
	var entries []CalendarEntry
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/calendar",
		rel:    withQuery(endpoint("calendar"), values),
		dest:   &entries,
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetCalendarEntry fetches one calendar entry.
func (c *Client) GetCalendarEntry(ctx context.Context, id string) (CalendarEntry, error) {
	var entry CalendarEntry
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/calendar/{id}",
		rel:    endpoint("calendar", id),
		dest:   &entry,
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateCalendarEntry posts entry and returns the stored entry, including
// its server-assigned id.
func (c *Client) CreateCalendarEntry(ctx context.Context, entry CalendarEntry) (CalendarEntry, error) {
	var created CalendarEntry
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/calendar",
		rel:    endpoint("calendar"),
		body:   entry,
		dest:   &created,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCalendarEntry replaces the entry with id. The response body is discarded.
func (c *Client) UpdateCalendarEntry(ctx context.Context, id string, entry CalendarEntry) error {
	return c.do(ctx, call{
		method: http.MethodPut,
		route:  "/calendar/{id}",
		rel:    endpoint("calendar", id),
		body:   entry,
	})
}

// DeleteCalendarEntry removes the entry with id.
func (c *Client) DeleteCalendarEntry(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/calendar/{id}",
		rel:    endpoint("calendar", id),
	})
}
