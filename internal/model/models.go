package model

// All lists every persisted entity in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Subscription{},
		&VerificationCode{},
		&PasswordResetToken{},
		&ExamCategory{},
		&Block{},
		&Topic{},
		&Question{},
		&Answer{},
		&ExamTemplate{},
		&TestSession{},
		&Result{},
		&Post{},
	}
}
