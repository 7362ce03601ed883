package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage holds the singleton resources shared by the systems of a scheduler.
// Each resource type has exactly one instance, addressed by its reflect.Type.
type Storage struct {
	singletons *intmap.Map[int, *singletonEntry]
	order      []reflect.Type
}

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewStorage creates an empty storage
func NewStorage() *Storage {
	return &Storage{
		singletons: intmap.New[int, *singletonEntry](16),
	}
}

// AddSingleton stores a copy of component as the singleton for its type,
// replacing any previous value of the same type.
func (s *Storage) AddSingleton(component any) {
	if component == nil {
		panic("cannot add a nil singleton")
	}

	compType := reflect.TypeOf(component)
	value := reflect.ValueOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
		value = value.Elem()
	}

	id := typeId(compType)
	if entry, ok := s.singletons.Get(id); ok {
		entry.value.Elem().Set(value)
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(value)

	s.singletons.Put(id, &singletonEntry{
		typ:     compType,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
	s.order = append(s.order, compType)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeId(t))
	if !ok {
		return nil
	}
	return entry
}

// ReadSingleton points *target at the stored singleton of type T.
// target must be a **T. Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(targetValue.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	targetValue.Elem().Set(entry.value)
	return true
}

// CollectStats reports the singletons currently held.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		SingletonCount: len(s.order),
		SingletonTypes: make([]string, 0, len(s.order)),
	}
	for _, t := range s.order {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	return stats
}

func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
