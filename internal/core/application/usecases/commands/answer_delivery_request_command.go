package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrAnswerDeliveryRequestCommandIsNotConstructed = errors.New(
	"AnswerDeliveryRequestCommand must be created via NewAnswerDeliveryRequestCommand constructor",
)

// AnswerDeliveryRequestCommand is an agent's reply to a delivery request. The same
// command feeds both the accept and the reject handler.
type AnswerDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

func NewAnswerDeliveryRequestCommand(requestID kernel.UUID, actor kernel.Actor) (AnswerDeliveryRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), actor.Validate()); err != nil {
		return AnswerDeliveryRequestCommand{}, err
	}
	return AnswerDeliveryRequestCommand{
		requestID: requestID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AnswerDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrAnswerDeliveryRequestCommandIsNotConstructed)
}

func (c AnswerDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AnswerDeliveryRequestCommand) Actor() kernel.Actor {
	return c.actor
}
