package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/henrystivens/go-kumbia-auth/hashing"
)

// ModelAuthenticator verifies credentials against a [UserLookup] and, on
// success, projects the configured record attributes into a [SessionStore].
// Every check runs a fixed pipeline; the first failing stage short-circuits
// the rest:
//
//	empty-credential guard → referer guard → sanitize → lookup → verify →
//	project attributes → flag session
//
// Each terminal state writes the session outcome flag exactly once (true on
// success, false on failure), with one deliberate exception: empty
// credentials are a client-input error, recorded nowhere.
type ModelAuthenticator struct {
	Base

	lookup  UserLookup
	hasher  *hashing.Manager
	store   SessionStore
	referer RefererGuard

	model      string
	findMethod string
	namespace  string
	fields     []string
}

var _ Authenticator = (*ModelAuthenticator)(nil)

// NewModelAuthenticator wires a strategy from its collaborators. Zero-valued
// cfg fields fall back to the package defaults; pass [DefaultConfig] (or the
// zero Config) for the standard behavior.
func NewModelAuthenticator(lookup UserLookup, hasher *hashing.Manager, store SessionStore, cfg Config) *ModelAuthenticator {
	cfg = cfg.withDefaults()
	return &ModelAuthenticator{
		Base: Base{
			flagKey:   cfg.FlagKey,
			passField: cfg.PasswordField,
			logger:    cfg.Logger,
		},
		lookup:     lookup,
		hasher:     hasher,
		store:      store,
		model:      cfg.Model,
		findMethod: cfg.FindMethod,
		namespace:  cfg.SessionNamespace,
		fields:     append([]string(nil), cfg.Fields...),
	}
}

// SetModel changes the model name resolved through the lookup.
func (a *ModelAuthenticator) SetModel(name string) { a.model = name }

// SetFindMethod changes the finder invoked on the resolved model.
func (a *ModelAuthenticator) SetFindMethod(name string) { a.findMethod = name }

// SetSessionNamespace changes the namespace attributes are projected into.
func (a *ModelAuthenticator) SetSessionNamespace(namespace string) { a.namespace = namespace }

// SetFields replaces the list of record attributes projected on success.
func (a *ModelAuthenticator) SetFields(fields []string) {
	a.fields = append([]string(nil), fields...)
}

// Authenticate implements [Authenticator]. It delegates to the check
// pipeline exactly once and returns its result unchanged.
func (a *ModelAuthenticator) Authenticate(ctx context.Context, req RequestInfo, username, password string) bool {
	return a.check(ctx, req, username, password)
}

func (a *ModelAuthenticator) check(ctx context.Context, req RequestInfo, username, password string) bool {
	// Client-input error: no lookup, no session write, no log entry.
	if username == "" || password == "" {
		a.SetError(msgEmptyCredentials)
		return false
	}

	if !a.referer.Allow(req) {
		// Full detail for operators, generic denial for the caller.
		a.Log("authentication blocked by referer policy",
			"remote_addr", req.RemoteAddr,
			"user_agent", req.UserAgent,
			"referer", req.Referer,
		)
		return a.fail(ctx, msgPolicyDenied)
	}

	username = SanitizeUsername(username)

	handle, err := a.lookup.Resolve(a.model)
	if err != nil {
		// Configuration error, phrased for operators.
		return a.fail(ctx, err.Error())
	}

	rec, err := handle.Invoke(ctx, a.findMethod, username)
	if err != nil {
		if errors.Is(err, ErrMethodNotFound) {
			return a.fail(ctx, fmt.Sprintf("Method %s not found in model", a.findMethod))
		}
		// A failing lookup must stay indistinguishable from bad credentials.
		a.Log("user lookup failed", "model", a.model, "error", err)
		return a.fail(ctx, msgInvalidCredentials)
	}

	// "Not found" and "wrong password" share one message so usernames
	// cannot be enumerated from the response.
	if rec == nil || !a.verifyRecord(password, rec) {
		return a.fail(ctx, msgInvalidCredentials)
	}

	for _, field := range a.fields {
		if v, ok := rec.Attribute(field); ok {
			a.setSession(ctx, a.namespace, field, v)
		}
	}
	a.setSession(ctx, DefaultNamespace, a.flagKey, true)
	return true
}

// verifyRecord checks the supplied password against the record's stored
// hash, resolving the hashing driver from the hash itself.
func (a *ModelAuthenticator) verifyRecord(password string, rec Record) bool {
	v, ok := rec.Attribute(a.passField)
	if !ok {
		return false
	}
	stored, ok := v.(string)
	if !ok || stored == "" {
		return false
	}
	match, err := a.hasher.CheckWithDetect(password, stored)
	if err != nil {
		a.Log("stored credential hash is not verifiable", "error", err)
		return false
	}
	return match
}

// fail records the failure reason and writes the outcome flag as false.
func (a *ModelAuthenticator) fail(ctx context.Context, msg string) bool {
	a.SetError(msg)
	a.setSession(ctx, DefaultNamespace, a.flagKey, false)
	return false
}

// setSession writes best-effort: the check outcome is decided by
// verification, and store durability is the collaborator's concern.
func (a *ModelAuthenticator) setSession(ctx context.Context, namespace, key string, value any) {
	if err := a.store.Set(ctx, namespace, key, value); err != nil {
		a.Log("session write failed", "namespace", namespace, "key", key, "error", err)
	}
}

var (
	createHashOnce sync.Once
	createHashMgr  *hashing.Manager
	createHashErr  error
)

// CreateHash produces a one-way hash of password suitable for persistent
// storage, using the recommended default algorithm (Argon2id). The output
// is self-describing, so it remains verifiable after future algorithm
// upgrades.
//
// CreateHash is used at credential-creation time (registration, password
// change), never during a check. It is stateless and safe for unrestricted
// concurrent use.
func CreateHash(password string) (string, error) {
	createHashOnce.Do(func() {
		createHashMgr, createHashErr = hashing.NewDefaultManager()
	})
	if createHashErr != nil {
		return "", createHashErr
	}
	return createHashMgr.Make(password)
}
