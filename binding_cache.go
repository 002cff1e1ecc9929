package parc

import (
	"fmt"
	"reflect"
	"sync"
)

// PlanCache provides thread-safe caching of record plans per struct type.
// A plan is built at most once per type, even under concurrent access.
type PlanCache struct {
	cache sync.Map // map[reflect.Type]*planEntry
}

type planEntry struct {
	once sync.Once
	plan *recordPlan
	err  error
}

var recordPlans = NewPlanCache()

// NewPlanCache creates an empty plan cache.
func NewPlanCache() *PlanCache {
	return &PlanCache{}
}

// GetOrCreate returns the plan for typ, building and caching it on first use.
// A build error is cached as well.
func (pc *PlanCache) GetOrCreate(typ reflect.Type) (*recordPlan, error) {
	actual, _ := pc.cache.LoadOrStore(typ, &planEntry{})
	entry := actual.(*planEntry)
	entry.once.Do(func() {
		entry.plan, entry.err = newRecordPlan(typ)
	})
	return entry.plan, entry.err
}

// Len returns the number of cached types.
func (pc *PlanCache) Len() int {
	n := 0
	pc.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Clear removes all cached plans.
func (pc *PlanCache) Clear() {
	pc.cache.Clear()
}

///////////////////////////////////////////////////////////////////////////////
// Record plans
///////////////////////////////////////////////////////////////////////////////

// recordPlan lists the tagged fields of a struct type and how to fill them.
type recordPlan struct {
	typ    reflect.Type
	fields []fieldPlan
}

type fieldPlan struct {
	index        int    // Index of the field in the struct
	name         string // Name of the field for error reporting
	binding      string // Binding name read from the parc tag
	defaultValue string // Value of the default tag
	hasDefault   bool
	omitEmpty    bool
	omitErr      bool
}

func newRecordPlan(typ reflect.Type) (*recordPlan, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, typ)
	}

	plan := &recordPlan{typ: typ}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		raw, ok := field.Tag.Lookup(FieldTagName)
		if !ok || raw == FieldTagSkip {
			continue
		}

		tag, err := DecodeFieldTag(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		fp := fieldPlan{
			index:     i,
			name:      field.Name,
			binding:   tag.Binding,
			omitEmpty: tag.Has(OmitEmptyFieldModifier),
			omitErr:   tag.Has(OmitErrFieldModifier),
		}
		fp.defaultValue, fp.hasDefault = field.Tag.Lookup(DefaultTagName)
		plan.fields = append(plan.fields, fp)
	}
	return plan, nil
}

// fill assigns bound values to the fields of dest, a settable struct value.
func (plan *recordPlan) fill(dest reflect.Value, bindings Bindings) error {
	for _, fp := range plan.fields {
		field := dest.Field(fp.index)

		value, found := bindings[fp.binding]
		if opt, ok := value.(optional); ok {
			value, found = opt.unwrap()
		}

		var err error
		switch {
		case found:
			err = assignValue(field, value)
		case fp.hasDefault:
			err = setFieldValue(field, fp.defaultValue)
		case fp.omitEmpty:
			continue
		default:
			return fmt.Errorf("%w: %s", ErrMissingBinding, fp.binding)
		}

		if err != nil && !fp.omitErr {
			return fmt.Errorf("field %s: %w", fp.name, err)
		}
	}
	return nil
}
