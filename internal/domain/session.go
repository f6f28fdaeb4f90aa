package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrSessionClosed is returned by any call on a committed session.
var ErrSessionClosed error = &ConflictError{Entity: "edit session", Reason: "already committed"}

// EditSession is a working copy of a quotation. Mutations touch only the
// copy; Commit hands back the edited value and closes the session.
//
//	s := q.Edit()
//	lineID, _ := s.AddItem(service, 2)
//	_ = s.SetDiscountPercentage(decimal.NewFromInt(10))
//	edited, err := s.Commit()
type EditSession struct {
	draft  Quotation
	closed bool
}

// Edit opens an editing session over a deep copy of q.
func (q *Quotation) Edit() *EditSession {
	return &EditSession{draft: q.Clone()}
}

// QuotationID returns the ID of the quotation being edited.
func (s *EditSession) QuotationID() string {
	return s.draft.ID
}

// Preview returns a copy of the current draft, for reading totals
// mid-session.
func (s *EditSession) Preview() Quotation {
	return s.draft.Clone()
}

// Commit returns the edited quotation and closes the session.
func (s *EditSession) Commit() (Quotation, error) {
	if err := s.open(); err != nil {
		return Quotation{}, err
	}

	s.closed = true

	return s.draft.Clone(), nil
}

func (s *EditSession) open() error {
	if s.closed {
		return ErrSessionClosed
	}

	return nil
}

func (s *EditSession) line(id string) (*QuoteItem, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	idx := s.draft.ItemByID(id)
	if idx < 0 {
		return nil, NewNotFoundError(EntityLineItem, id)
	}

	return &s.draft.Items[idx], nil
}

func validQuantity(qty int) error {
	if qty < 1 {
		return NewValidationErrorWithValue("quantity", "must be at least 1", qty)
	}

	return nil
}

// AddItem appends a line for service and returns its line ID.
func (s *EditSession) AddItem(service ServiceItem, quantity int) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}

	if err := validQuantity(quantity); err != nil {
		return "", err
	}

	item := NewQuoteItem(service, quantity)
	s.draft.Items = append(s.draft.Items, item)

	return item.ID, nil
}

// RemoveItem deletes the line with the given ID.
func (s *EditSession) RemoveItem(lineID string) error {
	if err := s.open(); err != nil {
		return err
	}

	idx := s.draft.ItemByID(lineID)
	if idx < 0 {
		return NewNotFoundError(EntityLineItem, lineID)
	}

	s.draft.Items = append(s.draft.Items[:idx], s.draft.Items[idx+1:]...)

	return nil
}

// SetQuantity changes a line's quantity.
func (s *EditSession) SetQuantity(lineID string, quantity int) error {
	item, err := s.line(lineID)
	if err != nil {
		return err
	}

	if err := validQuantity(quantity); err != nil {
		return err
	}

	item.Quantity = quantity

	return nil
}

// SetOverridePrice pins a line's unit price.
func (s *EditSession) SetOverridePrice(lineID string, price decimal.Decimal) error {
	item, err := s.line(lineID)
	if err != nil {
		return err
	}

	item.OverridePrice = &price

	return nil
}

// ClearOverridePrice reverts a line to the service's base price.
func (s *EditSession) ClearOverridePrice(lineID string) error {
	item, err := s.line(lineID)
	if err != nil {
		return err
	}

	item.OverridePrice = nil

	return nil
}

// SetItemNotes replaces a line's notes.
func (s *EditSession) SetItemNotes(lineID, notes string) error {
	item, err := s.line(lineID)
	if err != nil {
		return err
	}

	item.Notes = notes

	return nil
}

// SetClient replaces the client identity fields.
func (s *EditSession) SetClient(name, phone, email string) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.ClientName = name
	s.draft.ClientPhone = phone
	s.draft.ClientEmail = email

	return nil
}

// SetEvent changes the event type and date.
func (s *EditSession) SetEvent(eventType EventType, date time.Time) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.EventType = eventType
	s.draft.EventDate = date

	return nil
}

// SetVenue replaces the venue text.
func (s *EditSession) SetVenue(venue string) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.Venue = venue

	return nil
}

// SetGuestCount changes the expected number of guests.
func (s *EditSession) SetGuestCount(guests int) error {
	if err := s.open(); err != nil {
		return err
	}

	if guests < 0 {
		return NewValidationErrorWithValue("guestCount", "must not be negative", guests)
	}

	s.draft.GuestCount = guests

	return nil
}

// SetDiscountPercentage changes the discount percentage.
func (s *EditSession) SetDiscountPercentage(pct decimal.Decimal) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.DiscountPercentage = pct

	return nil
}

// SetAdditionalFees changes the flat additional fees.
func (s *EditSession) SetAdditionalFees(fees decimal.Decimal) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.AdditionalFees = fees

	return nil
}

// SetTaxPercentage changes the tax percentage.
func (s *EditSession) SetTaxPercentage(pct decimal.Decimal) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.TaxPercentage = pct

	return nil
}

// SetNotes replaces the quotation notes.
func (s *EditSession) SetNotes(notes string) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.Notes = notes

	return nil
}

// SetFinalized sets the finalized flag. Finalization does not lock the draft.
func (s *EditSession) SetFinalized(finalized bool) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.Finalized = finalized

	return nil
}

// ToggleFinalized flips the finalized flag and returns the new value.
func (s *EditSession) ToggleFinalized() (bool, error) {
	if err := s.open(); err != nil {
		return false, err
	}

	s.draft.Finalized = !s.draft.Finalized

	return s.draft.Finalized, nil
}

// Reprice overwrites every line's override price with base price times
// multiplier.
func (s *EditSession) Reprice(multiplier decimal.Decimal) error {
	if err := s.open(); err != nil {
		return err
	}

	s.draft.Reprice(multiplier)

	return nil
}
