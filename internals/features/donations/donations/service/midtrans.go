package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"

	donationModel "annur_backend/internals/features/donations/donations/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(d donationModel.DonationModel) (string, string, error) {
	if d.DonationAmountIDR <= 0 {
		return "", "", errors.New("invalid donation_amount_idr")
	}
	if d.DonationOrderID == "" {
		return "", "", errors.New("donation_order_id is required")
	}

	names := strings.SplitN(strings.TrimSpace(d.DonationDonorName), " ", 2)
	first := names[0]
	last := ""
	if len(names) > 1 {
		last = names[1]
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: d.DonationAmountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: d.DonationDonorEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       d.DonationOrderID,
				Price:    d.DonationAmountIDR,
				Qty:      1,
				Name:     "Donasi " + d.DonationType,
				Category: "Donation",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Signature webhook
========================================================= */

// VerifySignature mengecek SHA512(order_id + status_code + gross_amount + serverKey)
// terhadap signature_key dari notifikasi Midtrans.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	want := strings.ToLower(strings.TrimSpace(signature))
	if want == "" {
		return false
	}
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == want
}
