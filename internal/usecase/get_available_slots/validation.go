package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TerminalID <= 0 {
		return fmt.Errorf("%w: terminalID must be positive", ErrInvalidInput)
	}
	return nil
}
