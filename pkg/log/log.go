package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a interface de log usada pelo dashboard
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	SessionIDKey     contextKey = "session_id"
)

const (
	correlationIDField = "correlation_id"
	sessionIDField     = "session_id"
)

type logger struct {
	entry *logrus.Entry
}

// L é a instância global usada diretamente pelos pacotes
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger deixa os logs compactos e em nível debug nos testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithField adiciona um único campo ao Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	// Em desenvolvimento, omitimos campos de rastreabilidade para logs mais limpos
	if IsDevelopment() && !isRelevantField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adiciona múltiplos campos ao Logger
func (l *logger) WithFields(fields Fields) Logger {
	if IsDevelopment() {
		relevantFields := make(logrus.Fields)
		for k, v := range fields {
			if isRelevantField(k) {
				relevantFields[k] = v
			}
		}
		if len(relevantFields) == 0 {
			return l
		}
		return &logger{entry: l.entry.WithFields(relevantFields)}
	}

	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// isRelevantField lista os campos mantidos em desenvolvimento: os de requisição
// HTTP e os que identificam sessão, painel e sequência de busca
func isRelevantField(key string) bool {
	switch key {
	case correlationIDField, sessionIDField, "method", "path", "status_code", "duration_ms", "error",
		"view", "seq", "month", "page", "search", "status":
		return true
	}
	return strings.HasPrefix(key, "view_")
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext copia para o log o ID de correlação e o ID da sessão, se houver
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	var out Logger = l
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		out = out.WithField(correlationIDField, correlationID)
	}
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		out = out.WithField(sessionIDField, sessionID)
	}

	return out
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *logger) Fatal(args ...interface{})                 { l.entry.Fatal(args...) }

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithSessionID associa a sessão de dashboard ao contexto da requisição
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// ForContext cria um logger com os IDs presentes no contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}

// ForView cria um logger já marcado com o painel de origem
func ForView(view string) Logger {
	return L.WithField("view", view)
}
