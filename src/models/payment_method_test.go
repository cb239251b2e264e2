package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodHashNeverSerialized(t *testing.T) {
	method := PaymentMethod{
		Name:     "Vodafone Cash",
		Number:   "01012345678",
		Password: "$2a$10$controlhash",
	}

	data, err := json.Marshal(method)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "controlhash")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), "Vodafone Cash")
}
