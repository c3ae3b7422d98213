package models

type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}
