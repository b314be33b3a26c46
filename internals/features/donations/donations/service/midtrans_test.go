package service

import (
	"testing"

	donationModel "annur_backend/internals/features/donations/donations/model"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const (
		orderID     = "DN-1700000000-abc12345"
		statusCode  = "200"
		grossAmount = "150000.00"
		serverKey   = "SB-Mid-server-testkey"
		// sha512(orderID + statusCode + grossAmount + serverKey)
		valid = "95ac5b2c5de82bebbe50b8cd30f96e3d3778ec876309efbfc045ad87da28059962b2299f8bb0f3db0f4eb681aa7e4428e7e19fe48f89a91dff35e716788cf4b7"
	)

	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, serverKey, valid))

	// casing dan whitespace dari gateway ditoleransi
	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, serverKey, "  "+valid+"\n"))
	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, serverKey, "95AC5B2C5DE82BEBBE50B8CD30F96E3D3778EC876309EFBFC045AD87DA28059962B2299F8BB0F3DB0F4EB681AA7E4428E7E19FE48F89A91DFF35E716788CF4B7"))

	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, serverKey, ""))
	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, serverKey, "deadbeef"))
	assert.False(t, VerifySignature(orderID, "201", grossAmount, serverKey, valid))
	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, "SB-Mid-server-otherkey", valid))
}

func TestGenerateSnapTokenRejectsInvalidOrder(t *testing.T) {
	_, _, err := GenerateSnapToken(donationModel.DonationModel{
		DonationOrderID:   "DN-1",
		DonationAmountIDR: 0,
	})
	assert.Error(t, err)

	_, _, err = GenerateSnapToken(donationModel.DonationModel{
		DonationAmountIDR: 10000,
	})
	assert.Error(t, err)
}
