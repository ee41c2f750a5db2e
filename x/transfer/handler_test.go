package transfer

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"
	. "gopkg.in/check.v1"

	"gitlab.com/interchain/transfernode/x/transfer/types"
)

func setupKeeperForTest(c *C) (sdk.Context, Keeper, bankkeeper.Keeper) {
	keyTransfer := sdk.NewKVStoreKey(types.StoreKey)
	keyAcc := sdk.NewKVStoreKey(authtypes.StoreKey)
	keyBank := sdk.NewKVStoreKey(banktypes.StoreKey)
	keyParams := sdk.NewKVStoreKey(paramstypes.StoreKey)
	tkeyParams := sdk.NewTransientStoreKey(paramstypes.TStoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyTransfer, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyAcc, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyBank, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyParams, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(tkeyParams, storetypes.StoreTypeTransient, db)
	c.Assert(ms.LoadLatestVersion(), IsNil)

	ctx := sdk.NewContext(ms, tmproto.Header{ChainID: "transfernode"}, false, log.NewNopLogger())

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(interfaceRegistry)
	cryptocodec.RegisterInterfaces(interfaceRegistry)
	cdc := codec.NewProtoCodec(interfaceRegistry)
	legacyAmino := codec.NewLegacyAmino()

	paramsKeeper := paramskeeper.NewKeeper(cdc, legacyAmino, keyParams, tkeyParams)

	maccPerms := map[string][]string{
		types.ModuleName: {authtypes.Minter},
	}
	accountKeeper := authkeeper.NewAccountKeeper(cdc, keyAcc, paramsKeeper.Subspace(authtypes.ModuleName), authtypes.ProtoBaseAccount, maccPerms, sdk.Bech32MainPrefix)
	blockedAddrs := map[string]bool{
		authtypes.NewModuleAddress(types.ModuleName).String(): true,
	}
	bankKeeper := bankkeeper.NewBaseKeeper(cdc, keyBank, accountKeeper, paramsKeeper.Subspace(banktypes.ModuleName), blockedAddrs)
	bankKeeper.SetParams(ctx, banktypes.DefaultParams())

	k := NewKeeper(keyTransfer, paramsKeeper.Subspace(types.ModuleName), accountKeeper, bankKeeper)
	k.SetParams(ctx, types.DefaultParams())
	return ctx, k, bankKeeper
}

// FundAccount mints through the module account and credits addr, used to seed
// escrow balances in tests.
func FundAccount(c *C, ctx sdk.Context, bk bankkeeper.Keeper, addr sdk.AccAddress, coin sdk.Coin) {
	coins := sdk.NewCoins(coin)
	c.Assert(bk.MintCoins(ctx, types.ModuleName, coins), IsNil)
	c.Assert(bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins), IsNil)
}
