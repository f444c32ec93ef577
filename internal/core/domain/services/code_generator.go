package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"orderflow/internal/core/domain/model/order"
)

// CodeGenerator produces delivery confirmation codes.
type CodeGenerator interface {
	Generate() (order.ConfirmationCode, error)
}

// RandomCodeGenerator draws codes uniformly from 0000-9999 using crypto/rand, so a code
// cannot be predicted from the time it was issued.
type RandomCodeGenerator struct{}

var maxCode = big.NewInt(10000)

func (RandomCodeGenerator) Generate() (order.ConfirmationCode, error) {
	n, err := rand.Int(rand.Reader, maxCode)
	if err != nil {
		return "", fmt.Errorf("generate confirmation code: %w", err)
	}
	return order.NewConfirmationCode(fmt.Sprintf("%0*d", order.CodeLength, n.Int64()))
}
