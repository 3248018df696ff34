package customer

import "strings"

func isValidFullName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 4 {
		return false
	}
	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
