package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCheckinRequestValidation(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name string
		req  CheckinRequest
		ok   bool
	}{
		{
			"valid",
			CheckinRequest{UserID: 1, EventID: "3f2a9b60-1111-4222-8333-444455556666", Geolocation: "-6.2,106.8"},
			true,
		},
		{
			"valid without geolocation",
			CheckinRequest{UserID: 1, EventID: "3f2a9b60-1111-4222-8333-444455556666"},
			true,
		},
		{
			"missing user",
			CheckinRequest{EventID: "3f2a9b60-1111-4222-8333-444455556666"},
			false,
		},
		{
			"missing event",
			CheckinRequest{UserID: 1},
			false,
		},
		{
			"event id not uuid",
			CheckinRequest{UserID: 1, EventID: "123"},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&tc.req)
			if tc.ok && err != nil {
				t.Errorf("valid request rejected: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("invalid request accepted")
			}
		})
	}
}
