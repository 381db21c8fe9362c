package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var otpMax = big.NewInt(1_000_000)

// GenerateOtpCode returns a zero-padded six digit code from crypto/rand.
func GenerateOtpCode() string {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("otp: rand failed: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
