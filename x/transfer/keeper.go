package transfer

import (
	"fmt"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"gitlab.com/interchain/transfernode/x/transfer/types"
)

type dbPrefix string

const (
	prefixDenomTrace dbPrefix = "denomtrace_"
	prefixChannel    dbPrefix = "channel_"
)

func getKey(prefix dbPrefix, key string) string {
	return fmt.Sprintf("%s%s", prefix, key)
}

// Keeper maintains the link to data storage and exposes the state the receive
// handler reads and its deferred actions mutate.
type Keeper struct {
	storeKey      storetypes.StoreKey // Unexposed key to access store from sdk.Context
	paramSpace    paramtypes.Subspace
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
}

// NewKeeper creates new instances of the transfer Keeper
func NewKeeper(storeKey storetypes.StoreKey, paramSpace paramtypes.Subspace, accountKeeper types.AccountKeeper, bankKeeper types.BankKeeper) Keeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}
	return Keeper{
		storeKey:      storeKey,
		paramSpace:    paramSpace,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams returns the current module parameters
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	k.paramSpace.GetParamSet(ctx, &params)
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}

// IsReceiveEnabled checks whether inbound transfers are currently accepted
func (k Keeper) IsReceiveEnabled(ctx sdk.Context) bool {
	var enabled bool
	k.paramSpace.Get(ctx, types.KeyReceiveEnabled, &enabled)
	return enabled
}

// IsBlockedAccount checks whether an account may not receive funds
func (k Keeper) IsBlockedAccount(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.bankKeeper.BlockedAddr(addr)
}

// GetModuleAccountAddress returns the module owned account vouchers are
// minted into before being credited to the final receiver.
func (k Keeper) GetModuleAccountAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(types.ModuleName)
}
