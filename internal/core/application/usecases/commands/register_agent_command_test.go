package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAgentCommand_NameIsRequired(t *testing.T) {
	p := newParty()

	_, err := commands.NewRegisterAgentCommand(p.vendorID, "", "+91 98450 00000", p.vendor())

	require.ErrorIs(t, err, agent.ErrNameIsRequired)
}

func TestRegisterAgentCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	p := newParty()
	cmd, err := commands.NewRegisterAgentCommand(p.vendorID, "Ravi", "+91 98450 00000", p.vendor())
	require.NoError(t, err)

	var stored *agent.Agent
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Add", ctx, mock.AnythingOfType("*agent.Agent")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*agent.Agent) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Act
	err = commands.NewRegisterAgentCommandHandler(factory).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.AgentID(), stored.ID())
	assert.True(t, stored.BelongsTo(p.vendorID))
	assert.Zero(t, stored.ActiveDeliveries())
	uow.AssertExpectations(t)
}

func TestRegisterAgentCommandHandler_Handle_OtherVendorsRoster(t *testing.T) {
	p := newParty()
	intruder := kernel.Actor{Role: kernel.RoleVendor, ID: kernel.NewUUID()}
	cmd, err := commands.NewRegisterAgentCommand(p.vendorID, "Ravi", "", intruder)
	require.NoError(t, err)
	factory := new(MockAgentUoWFactory)

	err = commands.NewRegisterAgentCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
