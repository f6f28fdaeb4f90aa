package domain

import (
	"fmt"
	"slices"
	"strings"
)

// EventType is the kind of ceremony or occasion a quotation covers.
type EventType string

const (
	EventWedding      EventType = "wedding"
	EventEngagement   EventType = "engagement"
	EventHaldi        EventType = "haldi"
	EventMehendi      EventType = "mehendi"
	EventSangeet      EventType = "sangeet"
	EventReception    EventType = "reception"
	EventHousewarming EventType = "housewarming"
	EventBirthday     EventType = "birthday"
	EventAnniversary  EventType = "anniversary"
	EventCorporate    EventType = "corporate"
	EventFestival     EventType = "festival"
	EventNaming       EventType = "naming"
)

var eventTypes = []EventType{
	EventWedding,
	EventEngagement,
	EventHaldi,
	EventMehendi,
	EventSangeet,
	EventReception,
	EventHousewarming,
	EventBirthday,
	EventAnniversary,
	EventCorporate,
	EventFestival,
	EventNaming,
}

// EventTypes returns all known event types in declaration order.
func EventTypes() []EventType {
	return slices.Clone(eventTypes)
}

// DisplayName returns the English label shown on quotations.
func (e EventType) DisplayName() string {
	switch e {
	case EventWedding:
		return "Telugu Wedding"
	case EventEngagement:
		return "Engagement (Nischitartham)"
	case EventHaldi:
		return "Haldi Ceremony"
	case EventMehendi:
		return "Mehendi Ceremony"
	case EventSangeet:
		return "Sangeet Night"
	case EventReception:
		return "Reception"
	case EventHousewarming:
		return "Griha Pravesh"
	case EventBirthday:
		return "Birthday Celebration"
	case EventAnniversary:
		return "Anniversary"
	case EventCorporate:
		return "Corporate Event"
	case EventFestival:
		return "Festival Celebration"
	case EventNaming:
		return "Naming Ceremony (Namakaranam)"
	default:
		return string(e)
	}
}

// LocalName returns the Telugu label for the event.
func (e EventType) LocalName() string {
	switch e {
	case EventWedding:
		return "వివాహం"
	case EventEngagement:
		return "నిశ్చితార్థం"
	case EventHaldi:
		return "హల్దీ"
	case EventMehendi:
		return "మెహెందీ"
	case EventSangeet:
		return "సంగీత్"
	case EventReception:
		return "రిసెప్షన్"
	case EventHousewarming:
		return "గృహప్రవేశం"
	case EventBirthday:
		return "పుట్టినరోజు"
	case EventAnniversary:
		return "వార్షికోత్సవం"
	case EventCorporate:
		return "కార్పొరేట్ ఈవెంట్"
	case EventFestival:
		return "పండుగ"
	case EventNaming:
		return "నామకరణం"
	default:
		return ""
	}
}

// Valid reports whether e is one of the known event types.
func (e EventType) Valid() bool {
	return slices.Contains(eventTypes, e)
}

// ParseEventType accepts a key ("wedding") or display name ("Telugu Wedding"),
// case-insensitively.
func ParseEventType(s string) (EventType, error) {
	s = strings.TrimSpace(s)
	for _, e := range eventTypes {
		if strings.EqualFold(s, string(e)) || strings.EqualFold(s, e.DisplayName()) {
			return e, nil
		}
	}

	return "", NewValidationErrorWithValue("eventType", fmt.Sprintf("unknown event type %q", s), s)
}

// MentionsAny reports whether place contains any of the lower-case keywords,
// ignoring the case of place.
func MentionsAny(place string, keywords []string) bool {
	lower := strings.ToLower(place)
	return slices.ContainsFunc(keywords, func(k string) bool { return strings.Contains(lower, k) })
}
