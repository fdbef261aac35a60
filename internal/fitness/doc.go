// Package fitness provides an HTTP client for the fitness-tracking backend API.
//
// # Overview
//
// The client maps one Go method to one REST call against the backend:
// calendar entries, exercises, templates, progress reports and workout
// sessions. It builds the request (method, escaped path, query, JSON body),
// sends it, and hands back the decoded JSON body. It does not validate input,
// cache responses, retry, or classify failures.
//
// # Architecture
//
//   - client.go: Client construction, options, request execution
//   - calendar.go, exercises.go, templates.go, reports.go, sessions.go: one file per resource
//   - types.go: Document and the SetRecord body
//   - errors.go: StatusError for non-2xx responses
//
// # Client Usage
//
//	client, err := fitness.NewClient("http://127.0.0.1:8080/api",
//		fitness.WithTimeout(5*time.Second),
//		fitness.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//
//	session, err := client.StartSession(ctx, "u1", "c1")
//	if err != nil {
//		return err
//	}
//	err = client.RecordSet(ctx, session.ID(), "e1", fitness.SetRecord{
//		SetNumber:            1,
//		ActualRepsOrDuration: 10,
//		RestAfterSetSeconds:  30,
//	})
//
// Dependent calls must be sequenced by the caller, as above.
//
// # Documents
//
// Backend entities are opaque JSON objects. Document is a map[string]any and
// is returned exactly as decoded; helper accessors such as ID and String only
// read from it. ProgressReport stays raw JSON because its shape is defined by
// the backend.
//
// # Paths
//
// Identifiers are escaped per segment, so an id like "a/b" is sent as
// /calendar/a%2Fb and never splits into two segments. A path on the base URL
// is preserved as a prefix.
//
// # Request Handling
//
// Every request:
//   - Uses the caller's context for cancellation
//   - Sets Accept: application/json and User-Agent: liftlog/0.1
//   - Carries a fresh X-Request-ID used to correlate log lines
//   - Adds any default headers configured with WithHeader/WithHeaders
//   - Sends Content-Type: application/json when there is a body
//
// Update, delete and record-set calls discard the response body.
//
// # Error Handling
//
// Failures are returned to the caller, never swallowed:
//
//   - "execute request: ..." wraps transport errors (errors.Is works on the cause)
//   - *StatusError for any non-2xx status; StatusCode(err) extracts the code
//   - "decode response: ..." for malformed JSON bodies
//
// # Thread Safety
//
// A Client is immutable after NewClient and safe for concurrent use.
package fitness
