package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// FieldErrors reports which form inputs failed validation.
func FieldErrors(message string, fields map[string]string) Envelope {
	return Envelope{"error": message, "fields": fields}
}

func Message(message string) Envelope {
	return Envelope{"message": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
