package models

// Event is one of the four canonical request outcomes tracked by the
// analytics store. Status codes outside the mapping are unclassified: no
// event is recorded for them.
type Event uint8

const (
	EventOk Event = iota
	EventRedirect
	EventNotFound
	EventInternalError
)

// EventFromStatus maps a numeric status code to its Event. The second
// return value is false for unclassified codes.
func EventFromStatus(status int) (Event, bool) {
	switch status {
	case 200:
		return EventOk, true
	case 301:
		return EventRedirect, true
	case 404:
		return EventNotFound, true
	case 500:
		return EventInternalError, true
	default:
		return 0, false
	}
}

// Status returns the numeric status code the Event was derived from.
func (e Event) Status() int {
	switch e {
	case EventOk:
		return 200
	case EventRedirect:
		return 301
	case EventNotFound:
		return 404
	case EventInternalError:
		return 500
	}
	return 0
}
