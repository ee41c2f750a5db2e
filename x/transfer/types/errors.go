package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidPacketData   = errorsmod.Register(ModuleName, 2, "invalid transfer packet data")
	ErrReceiveDisabled     = errorsmod.Register(ModuleName, 3, "receiving transfers is disabled")
	ErrParseAccountFailure = errorsmod.Register(ModuleName, 4, "unable to parse receiver account")
	ErrUnauthorisedReceive = errorsmod.Register(ModuleName, 5, "receiver account is not authorised to receive funds")
	ErrUnknownChannel      = errorsmod.Register(ModuleName, 6, "unknown channel")
	ErrTraceNotFound       = errorsmod.Register(ModuleName, 7, "denomination trace not found")
	ErrUnknownAction       = errorsmod.Register(ModuleName, 8, "unknown deferred action")
	ErrBadVersion          = errorsmod.Register(ModuleName, 9, "bad version")
)
