package logger

// Field представляет одно структурированное поле лога.
type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}

// Logger - минимальный интерфейс логгера, не привязанный к конкретной библиотеке.
// Адаптеры лежат в подпакетах (zap_adapter).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}
