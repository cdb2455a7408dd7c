package commands

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrRateCourierCommandIsNotConstructed = errors.New(
		"RateCourierCommand must be created via NewRateCourierCommand constructor",
	)
	ErrRatingIsOutOfRange = errors.New("rating must be between 1 and 5")
)

// RateCourierCommand represents the shop's one-time rating of the courier's
// work on a finished order.
type RateCourierCommand struct { //nolint:recvcheck //using for validation
	orderID  uuid.UUID
	rating   int
	feedback string

	isSet bool
}

// NewRateCourierCommand creates a command to rate the courier on an order.
// The rating must be between 1 and 5; feedback is optional.
func NewRateCourierCommand(orderID uuid.UUID, rating int, feedback string) (RateCourierCommand, error) {
	rateCommand := RateCourierCommand{
		feedback: feedback,
		isSet:    true,
	}

	if err := errors.Join(
		rateCommand.setOrderID(orderID),
		rateCommand.setRating(rating),
	); err != nil {
		return RateCourierCommand{}, err
	}

	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateCourierCommandIsNotConstructed if validation fails.
func (c RateCourierCommand) Validate() error {
	if !c.isSet {
		return ErrRateCourierCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the rated order.
func (c RateCourierCommand) OrderID() uuid.UUID {
	return c.orderID
}

// Rating returns the rating value, from 1 to 5.
func (c RateCourierCommand) Rating() int {
	return c.rating
}

// Feedback returns the shop's free-form feedback, if any.
func (c RateCourierCommand) Feedback() string {
	return c.feedback
}

func (c *RateCourierCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *RateCourierCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingIsOutOfRange
	}

	c.rating = rating
	return nil
}
