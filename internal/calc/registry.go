// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     calc
// Description: Registry of named complex-number operations
// Author:      idmagic
// Created:     2026-10-13
// License:     MIT
// ============================================================================

// Package calc evaluates single named operations over complex operands.
// The registry is shared by the "calc" command and the interactive explorer.
package calc

import (
	"sort"
	"strings"
	"sync"

	"github.com/idmagic/comnum/foundation/core/errors"
	"github.com/idmagic/comnum/foundation/core/log"
	"github.com/idmagic/comnum/foundation/utils/mathx"
)

// Input holds the operands of one evaluation
type Input struct {
	A mathx.Complex
	B mathx.Complex

	// N is the exponent as typed by the user
	N string

	// Digits is the number of decimals used by "round"
	Digits int
}

// EvalFunc computes the result of an operation
type EvalFunc func(in Input) (Result, error)

// Operation describes one named operation
type Operation struct {
	Name    string
	Aliases []string
	Summary string

	// Binary operations read both A and B
	Binary bool

	// NeedsExponent operations read N
	NeedsExponent bool

	// NeedsDigits operations read Digits
	NeedsDigits bool

	Eval EvalFunc
}

// Options configures a registry
type Options struct {
	Logger *log.Logger

	// SkipBuiltins leaves the registry empty
	SkipBuiltins bool
}

// Registry maps operation names and aliases to operations
type Registry struct {
	operations map[string]*Operation
	aliases    map[string]string
	order      []string
	logger     *log.Logger
	mutex      sync.RWMutex
}

// NewRegistry creates a registry holding the built-in operations
func NewRegistry(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}

	r := &Registry{
		operations: make(map[string]*Operation),
		aliases:    make(map[string]string),
		logger:     opts.Logger.WithField("component", "calc-registry"),
	}

	if !opts.SkipBuiltins {
		for _, op := range builtinOperations() {
			if err := r.Register(op); err != nil {
				return nil, err
			}
		}
	}

	r.logger.Debug("calc registry initialized", log.Fields{
		"operationCount": len(r.order),
	})

	return r, nil
}

// Register adds an operation. Names and aliases are case-insensitive and
// must not collide with an existing name or alias.
func (r *Registry) Register(op *Operation) error {
	if op == nil {
		return errors.InvalidInput(errors.ModuleCalc, "register", nil, "operation definition")
	}
	name := normalize(op.Name)
	if name == "" {
		return errors.InvalidInput(errors.ModuleCalc, "register", op.Name, "non-empty operation name")
	}
	if op.Eval == nil {
		return errors.InvalidInput(errors.ModuleCalc, "register", op.Name, "operation with an Eval function")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.taken(name) {
		return errors.InvalidInput(errors.ModuleCalc, "register", name, "unregistered operation name")
	}
	for _, alias := range op.Aliases {
		if a := normalize(alias); a == "" || a == name || r.taken(a) {
			return errors.InvalidInput(errors.ModuleCalc, "register", alias, "unregistered alias")
		}
	}

	op.Name = name
	r.operations[name] = op
	r.order = append(r.order, name)
	for _, alias := range op.Aliases {
		r.aliases[normalize(alias)] = name
	}

	r.logger.Trace("calc operation registered", log.Fields{
		"operation": name,
		"aliases":   strings.Join(op.Aliases, ","),
	})

	return nil
}

func (r *Registry) taken(name string) bool {
	if _, exists := r.operations[name]; exists {
		return true
	}
	_, exists := r.aliases[name]
	return exists
}

// Has reports whether name or an alias of it is registered
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Lookup resolves a name or alias to its operation
func (r *Registry) Lookup(name string) (*Operation, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	key := normalize(name)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	if op, ok := r.operations[key]; ok {
		return op, nil
	}

	known := make([]string, len(r.order))
	copy(known, r.order)
	sort.Strings(known)
	return nil, errors.CalcUnknownOperation(name, known)
}

// Names returns the operation names in registration order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Operations returns the operations in registration order
func (r *Registry) Operations() []*Operation {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ops := make([]*Operation, 0, len(r.order))
	for _, name := range r.order {
		ops = append(ops, r.operations[name])
	}
	return ops
}

// Eval evaluates the named operation
func (r *Registry) Eval(name string, in Input) (Result, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	result, err := op.Eval(in)
	if err != nil {
		r.logger.Debug("calc operation failed", log.Fields{
			"operation": op.Name,
			"error":     err.Error(),
		})
		return Result{}, err
	}

	r.logger.Debug("calc operation evaluated", log.Fields{
		"operation": op.Name,
		"result":    result.String(),
	})
	return result, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
