package contract

import (
	"strings"

	"snapgov/sdk"
)

// Read-only exports. Composite answers go out as JSON via the generated
// tinyjson marshalers; scalar answers stay plain decimal strings.

//tinyjson:json
type ConfigView struct {
	Owner           string `json:"owner"`
	Epoch           uint64 `json:"epoch"`
	QuorumBps       uint64 `json:"quorum_bps"`
	QuorumAbs       int64  `json:"quorum_abs"`
	YesFloor        int64  `json:"yes_floor"`
	TTLSecs         int64  `json:"ttl_secs"`
	TimelockSecs    int64  `json:"timelock_secs"`
	RageQuitEnabled bool   `json:"ragequit_enabled"`
	TransferLocked  bool   `json:"transfer_locked"`
	SaleOpen        bool   `json:"sale_open"`
	SalePrice       int64  `json:"sale_price,omitempty"`
	SaleAsset       string `json:"sale_asset,omitempty"`
	PermitMirror    bool   `json:"permit_mirror"`
}

//tinyjson:json
type ProposalView struct {
	Id             string `json:"id"`
	State          string `json:"state"`
	SnapshotHeight uint64 `json:"snapshot_height"`
	SnapshotSupply int64  `json:"snapshot_supply"`
	CreatedAt      int64  `json:"created_at"`
	QueuedAt       int64  `json:"queued_at,omitempty"`
	ForVotes       int64  `json:"for"`
	AgainstVotes   int64  `json:"against"`
	AbstainVotes   int64  `json:"abstain"`
}

//tinyjson:json
type SplitLegView struct {
	Delegate  string `json:"delegate"`
	WeightBps uint64 `json:"weight_bps"`
}

//tinyjson:json
type DelegationView struct {
	Holder   string         `json:"holder"`
	Delegate string         `json:"delegate"`
	Split    []SplitLegView `json:"split,omitempty"`
}

//tinyjson:json
type PermitView struct {
	Id           string `json:"id"`
	Uses         string `json:"uses"`
	MirrorSupply int64  `json:"mirror_supply"`
}

//tinyjson:json
type FutarchyView struct {
	Id            string `json:"id"`
	Asset         string `json:"asset"`
	Pool          int64  `json:"pool"`
	Resolved      bool   `json:"resolved"`
	Winning       string `json:"winning,omitempty"`
	WinningSupply int64  `json:"winning_supply,omitempty"`
	PayoutPerUnit int64  `json:"payout_per_unit,omitempty"`
}

//tinyjson:json
type MembersView struct {
	Members []string `json:"members"`
}

func marshalView(m interface{ MarshalJSON() ([]byte, error) }) *string {
	data, err := m.MarshalJSON()
	if err != nil {
		sdk.Abort("failed to encode view")
	}
	return strptr(string(data))
}

// GetConfig returns the live engine configuration.
//
//go:wasmexport get_config
func GetConfig(_ *string) *string {
	cfg := loadConfig()
	return marshalView(&ConfigView{
		Owner:           AddressToString(cfg.Owner),
		Epoch:           cfg.Epoch,
		QuorumBps:       cfg.QuorumBps,
		QuorumAbs:       int64(cfg.QuorumAbs),
		YesFloor:        int64(cfg.YesFloor),
		TTLSecs:         cfg.TTLSecs,
		TimelockSecs:    cfg.TimelockSecs,
		RageQuitEnabled: cfg.RageQuitEnabled,
		TransferLocked:  cfg.TransferLocked,
		SaleOpen:        cfg.SaleOpen,
		SalePrice:       int64(cfg.SalePrice),
		SaleAsset:       string(cfg.SaleAsset),
		PermitMirror:    cfg.PermitMirror,
	})
}

// GetBalance returns an address's share balance.
// Example payload: GetBalance(strptr("hive:alice"))
//
//go:wasmexport get_balance
func GetBalance(payload *string) *string {
	addr := AddressFromString(unwrapPayload(payload, "address required"))
	return strptr(AmountToString(balanceOf(addr)))
}

// GetSupply returns the current share supply.
//
//go:wasmexport get_supply
func GetSupply(_ *string) *string {
	return strptr(AmountToString(totalSupply()))
}

// GetPower returns an address's voting power at a past height.
// Example payload: GetPower(strptr("hive:alice|41"))
//
//go:wasmexport get_power
func GetPower(payload *string) *string {
	parts := splitFields(unwrapPayload(payload, "address and height required"), 2)
	addr := AddressFromString(strings.TrimSpace(parts[0]))
	h := parseUintField(parts[1], "height")
	return strptr(AmountToString(votingPowerAt(addr, h)))
}

// GetSupplyAt returns the share supply as of a past height.
// Example payload: GetSupplyAt(strptr("41"))
//
//go:wasmexport get_supply_at
func GetSupplyAt(payload *string) *string {
	h := parseUintField(unwrapPayload(payload, "height required"), "height")
	return strptr(AmountToString(supplyAt(h)))
}

// GetDelegation returns an address's delegation, split legs included.
// Example payload: GetDelegation(strptr("hive:alice"))
//
//go:wasmexport get_delegation
func GetDelegation(payload *string) *string {
	addr := AddressFromString(unwrapPayload(payload, "address required"))
	d := loadDelegation(addr)
	view := &DelegationView{
		Holder:   AddressToString(addr),
		Delegate: AddressToString(d.Delegate),
	}
	for _, leg := range d.Split {
		view.Split = append(view.Split, SplitLegView{
			Delegate:  AddressToString(leg.Delegate),
			WeightBps: uint64(leg.WeightBps),
		})
	}
	return marshalView(view)
}

// GetProposal returns the tally record and computed state for a digest.
// Example payload: GetProposal(strptr("9f2c..."))
//
//go:wasmexport get_proposal
func GetProposal(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	view := &ProposalView{Id: id.Hex(), State: proposalStateOf(id).String()}
	if p := loadProposalRecord(id); p != nil {
		view.SnapshotHeight = p.SnapshotHeight
		view.SnapshotSupply = int64(p.SnapshotSupply)
		view.CreatedAt = p.CreatedAt
		view.QueuedAt = p.QueuedAt
		view.ForVotes = int64(p.ForVotes)
		view.AgainstVotes = int64(p.AgainstVotes)
		view.AbstainVotes = int64(p.AbstainVotes)
	}
	return marshalView(view)
}

// GetPermit returns the remaining use count and mirror supply for a digest.
// Example payload: GetPermit(strptr("9f2c..."))
//
//go:wasmexport get_permit
func GetPermit(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	view := &PermitView{Id: id.Hex(), Uses: "0", MirrorSupply: int64(mirrorSupply(id))}
	if uses, ok := permitUses(id); ok {
		if uses == UnlimitedUses {
			view.Uses = "unlimited"
		} else {
			view.Uses = UInt64ToString(uses)
		}
	}
	return marshalView(view)
}

// GetFutarchy returns the market record for a digest.
// Example payload: GetFutarchy(strptr("9f2c..."))
//
//go:wasmexport get_futarchy
func GetFutarchy(payload *string) *string {
	id := digestFromHex(unwrapPayload(payload, "digest required"))
	f := loadFutarchy(id)
	if f == nil {
		abortState("no market")
	}
	view := &FutarchyView{
		Id:       id.Hex(),
		Asset:    string(f.Asset),
		Pool:     int64(f.Pool),
		Resolved: f.Resolved,
	}
	if f.Resolved {
		view.Winning = f.Winning.String()
		view.WinningSupply = int64(f.WinningSupply)
		view.PayoutPerUnit = int64(f.PayoutPerUnit)
	}
	return marshalView(view)
}

// GetMembers lists the occupied badge slots in slot order.
//
//go:wasmexport get_members
func GetMembers(_ *string) *string {
	slots := loadMemberSlots()
	view := &MembersView{Members: []string{}}
	for _, addr := range slots {
		if addr != "" {
			view.Members = append(view.Members, AddressToString(addr))
		}
	}
	return marshalView(view)
}

// GetReceipt returns a holder's receipt balance for one digest and stance.
// Example payload: GetReceipt(strptr("9f2c...|1|hive:alice"))
//
//go:wasmexport get_receipt
func GetReceipt(payload *string) *string {
	parts := splitFields(unwrapPayload(payload, "receipt query required"), 3)
	id := digestFromHex(parts[0])
	stanceCode := parseUintField(parts[1], "stance")
	if stanceCode > uint64(StanceAbstain) {
		abortValidity("stance must be 0, 1 or 2")
	}
	holder := AddressFromString(strings.TrimSpace(parts[2]))
	return strptr(AmountToString(receiptBalance(id, Stance(stanceCode), holder)))
}

// GetReceiptSupply returns the total receipts minted for one digest and
// stance.
// Example payload: GetReceiptSupply(strptr("9f2c...|1"))
//
//go:wasmexport get_receipt_supply
func GetReceiptSupply(payload *string) *string {
	parts := splitFields(unwrapPayload(payload, "receipt query required"), 2)
	id := digestFromHex(parts[0])
	stanceCode := parseUintField(parts[1], "stance")
	if stanceCode > uint64(StanceAbstain) {
		abortValidity("stance must be 0, 1 or 2")
	}
	return strptr(AmountToString(receiptSupply(id, Stance(stanceCode))))
}

// GetMemberSlot returns an address's 1-based badge slot, 0 when unseated.
// Example payload: GetMemberSlot(strptr("hive:alice"))
//
//go:wasmexport get_member_slot
func GetMemberSlot(payload *string) *string {
	addr := AddressFromString(unwrapPayload(payload, "address required"))
	return strptr(UInt64ToString(memberSlotIndex(addr)))
}

// GetChatCount returns the number of accepted chat messages.
//
//go:wasmexport get_chat_count
func GetChatCount(_ *string) *string {
	return strptr(UInt64ToString(getCount(chatCountKey())))
}

// GetAllowance returns the caller-independent claimable grant for an
// address and asset.
// Example payload: GetAllowance(strptr("hive:alice|hbd"))
//
//go:wasmexport get_allowance
func GetAllowance(payload *string) *string {
	parts := splitFields(unwrapPayload(payload, "allowance query required"), 2)
	addr := AddressFromString(strings.TrimSpace(parts[0]))
	asset := sdk.Asset(strings.TrimSpace(parts[1]))
	return strptr(AmountToString(getAmount(allowanceKey(addr, asset))))
}
