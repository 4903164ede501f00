package auth

import "log/slog"

// Defaults applied by [DefaultConfig] and by [NewModelAuthenticator] for
// zero-valued Config fields.
const (
	// DefaultModel is the model name resolved through the [UserLookup].
	DefaultModel = "users"
	// DefaultFindMethod is the finder invoked on the resolved model.
	DefaultFindMethod = "find_by_username"
	// DefaultFlagKey is the session key flagging the check outcome.
	DefaultFlagKey = "authenticated"
	// DefaultPasswordField is the record attribute holding the credential hash.
	DefaultPasswordField = "password"
)

// Config holds the settings of a [ModelAuthenticator]. Values are fixed at
// construction time and read-only during a check; use the Set* methods to
// reconfigure between attempts.
type Config struct {
	// Model is the name of the entity resolved through the UserLookup.
	// Defaults to [DefaultModel].
	Model string

	// FindMethod is the finder invoked on the resolved model with the
	// sanitized username. Defaults to [DefaultFindMethod].
	FindMethod string

	// SessionNamespace is the namespace attributes are projected into.
	// Defaults to [DefaultNamespace].
	SessionNamespace string

	// Fields lists the record attributes copied into the session on
	// success. Only these fields are ever projected. Defaults to ["id"].
	Fields []string

	// FlagKey is the session key the boolean check outcome is written
	// under, always in [DefaultNamespace]. Defaults to [DefaultFlagKey].
	FlagKey string

	// PasswordField is the record attribute read as the stored credential
	// hash. Defaults to [DefaultPasswordField].
	PasswordField string

	// Logger receives security events (referer denials, collaborator
	// failures). Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Model:            DefaultModel,
		FindMethod:       DefaultFindMethod,
		SessionNamespace: DefaultNamespace,
		Fields:           []string{"id"},
		FlagKey:          DefaultFlagKey,
		PasswordField:    DefaultPasswordField,
	}
}

// withDefaults fills zero-valued fields with the package defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.FindMethod == "" {
		c.FindMethod = def.FindMethod
	}
	if c.SessionNamespace == "" {
		c.SessionNamespace = def.SessionNamespace
	}
	if len(c.Fields) == 0 {
		c.Fields = def.Fields
	}
	if c.FlagKey == "" {
		c.FlagKey = def.FlagKey
	}
	if c.PasswordField == "" {
		c.PasswordField = def.PasswordField
	}
	return c
}
