// Package model defines domain models for observing an on-chain lottery.
package model

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Status is the round life-cycle position. Values mirror the contract enum.
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusOpen
	StatusClosed
	StatusDrawing
	StatusResolved
)

var statusNames = [...]string{
	StatusNotStarted: "NOT_STARTED",
	StatusOpen:       "OPEN",
	StatusClosed:     "CLOSED",
	StatusDrawing:    "DRAWING",
	StatusResolved:   "RESOLVED",
}

var statusLabels = [...]string{
	StatusNotStarted: "Awaiting Start",
	StatusOpen:       "Entries Open",
	StatusClosed:     "Entries Closed",
	StatusDrawing:    "Selecting Winner...",
	StatusResolved:   "Lottery Completed",
}

// ParseStatus validates a raw contract value.
func ParseStatus(raw uint8) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown round status %d", raw)
	}
	return s, nil
}

// Valid reports whether s is one of the five known states.
func (s Status) Valid() bool {
	return s <= StatusResolved
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("STATUS(%d)", uint8(s))
	}
	return statusNames[s]
}

// Label is the human readable status text.
func (s Status) Label() string {
	if !s.Valid() {
		return "Unknown"
	}
	return statusLabels[s]
}

// AcceptsEntries reports whether the contract can still take entries in this status.
func (s Status) AcceptsEntries() bool {
	return s == StatusNotStarted || s == StatusOpen
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Round is a read-only, possibly stale snapshot of one lottery round.
type Round struct {
	ID          uint64
	EntryFee    *big.Int
	StartTime   int64
	EndTime     int64
	TotalPot    *big.Int
	Status      Status
	Winner      *common.Address
	RandomValue *big.Int
}

// PlayerList is the ordered entry list of a round. An address may appear more than once.
type PlayerList []common.Address

// Count returns how many times addr entered.
func (p PlayerList) Count(addr common.Address) int {
	n := 0
	for _, a := range p {
		if a == addr {
			n++
		}
	}
	return n
}

// Treasury is the fee recipient and its balance in wei.
type Treasury struct {
	Address common.Address
	Balance *big.Int
}
