package models

import "time"

// User defines the structure for registered users
type User struct {
	UserID      string    `dynamodbav:"userId" json:"userId"`
	FullName    string    `dynamodbav:"fullName" json:"fullName"`
	Email       string    `dynamodbav:"email" json:"email"`
	Username    string    `dynamodbav:"username" json:"username"`
	Password    string    `dynamodbav:"password" json:"-"` // bcrypt hash, never serialized
	ValuePlayer int       `dynamodbav:"valuePlayer,omitempty" json:"valuePlayer,omitempty"`
	Role        string    `dynamodbav:"role" json:"role"` // "user" or "admin"
	CreatedAt   time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersTable is the DynamoDB table name for users
const UsersTable = "Users"

// UsersEmailIndex is the GSI used to look users up by email
const UsersEmailIndex = "email-index"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
