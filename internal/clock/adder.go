package clock

// AddMinutes adds minutes to a 12-hour clock string and returns the
// normalized result.
//
//	AddMinutes("9:13 AM", 200)  // "12:33 PM"
//	AddMinutes("1:00 AM", -61)  // "11:59 PM"
//	AddMinutes("9:00 AM", 1440) // "9:00 AM"
//
// Errors wrap ErrInvalidFormat.
func AddMinutes(timeStr string, minutes int) (string, error) {
	m, err := Parse(timeStr)
	if err != nil {
		return "", err
	}
	return m.Add(minutes).String(), nil
}

// TimeAdder is a stateless value exposing AddMinutes as a method.
type TimeAdder struct{}

// AddMinutes calls the package-level AddMinutes.
func (TimeAdder) AddMinutes(timeStr string, minutes int) (string, error) {
	return AddMinutes(timeStr, minutes)
}
