package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
//
// Password and EmailOTP hold bcrypt hashes, never the plain values, and are
// excluded from JSON responses along with the OTP expiry.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fullname      string             `bson:"fullname" json:"fullname"`
	Email         string             `bson:"email" json:"email"`
	PendingEmail  string             `bson:"pendingEmail,omitempty" json:"pendingEmail,omitempty"`
	Password      string             `bson:"password" json:"-"`
	CreatedOn     time.Time          `bson:"createdOn" json:"createdOn"`
	EmailVerified bool               `bson:"emailVerified" json:"emailVerified"`
	EmailOTP      string             `bson:"emailOtp,omitempty" json:"-"`
	OTPExpires    time.Time          `bson:"otpExpires,omitempty" json:"-"`
}
