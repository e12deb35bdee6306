package request

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name          string     `json:"name"`
	Age           int        `json:"age"`
	Sex           string     `json:"sex"`
	Phone         string     `json:"phone"`
	BookedTime    *time.Time `json:"bookedTime"`
	EstConsultMin int        `json:"estConsultMin"`
}

type TokenRequest struct {
	Token int `json:"token" binding:"required"`
}

type PresenceRequest struct {
	Present *bool `json:"present" binding:"required"`
}
