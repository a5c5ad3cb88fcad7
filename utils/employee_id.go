package utils

import "math/rand"

const employeeIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateEmployeeID returns a new employee identifier of the form
// "UI" followed by 7 uppercase alphanumeric characters.
func GenerateEmployeeID() string {
	id := make([]byte, 0, 9)
	id = append(id, 'U', 'I')
	for i := 0; i < 7; i++ {
		id = append(id, employeeIDAlphabet[rand.Intn(len(employeeIDAlphabet))])
	}
	return string(id)
}
