package model

type WithID[T comparable] interface {
	ID() T
}
