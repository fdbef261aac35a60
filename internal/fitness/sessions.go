package fitness

import (
	"context"
	"net/http"
	"net/url"
)

// StartSession opens a workout session for userID against a calendar entry.
func (c *Client) StartSession(ctx context.Context, userID, calendarEntryID string) (Session, error) {
	var session Session
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/sessions/start",
		rel:    endpoint("sessions", "start"),
		body:   startSessionRequest{UserID: userID, CalendarEntryID: calendarEntryID},
		dest:   &session,
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession fetches one session with its recorded sets.
func (c *Client) GetSession(ctx context.Context, id string) (Session, error) {
	var session Session
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/sessions/{id}",
		rel:    endpoint("sessions", id),
		dest:   &session,
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// RecordSet patches one set of an exercise within a session. Whether the set
// is appended or overwrites an existing setNumber is decided by the backend.
func (c *Client) RecordSet(ctx context.Context, sessionID, exerciseID string, set SetRecord) error {
	return c.do(ctx, call{
		method: http.MethodPatch,
		route:  "/sessions/{sessionId}/exercise/{exerciseId}/set",
		rel:    endpoint("sessions", sessionID, "exercise", exerciseID, "set"),
		body:   set,
	})
}

// GetSessionsByUser lists every session of userID.
func (c *Client) GetSessionsByUser(ctx context.Context, userID string) ([]Session, error) {
	values := url.Values{}
	values.Set("userId", userID)
	return c.listSessions(ctx, values)
}

// GetSessionsByDateRange lists the sessions of userID between startDate and endDate.
func (c *Client) GetSessionsByDateRange(ctx context.Context, userID, startDate, endDate string) ([]Session, error) {
	values := url.Values{}
	values.Set("userId", userID)
	values.Set("startDate", startDate)
	values.Set("endDate", endDate)
	return c.listSessions(ctx, values)
}

func (c *Client) listSessions(ctx context.Context, values url.Values) ([]Session, error) {
	var sessions []Session
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/sessions",
		rel:    withQuery(endpoint("sessions"), values),
		dest:   &sessions,
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
