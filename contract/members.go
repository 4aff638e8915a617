package contract

import "snapgov/sdk"

// -----------------------------------------------------------------------------
// Sticky top-N membership: a fixed 256-slot arena plus a reverse index map
// (address -> 1-based slot, 0 = absent). Holding a slot IS the badge. Sitting
// members are never reshuffled; eviction is a full linear scan for the true
// minimum balance, an accepted O(256) cost per insertion attempt since slot
// order carries no meaning.
// -----------------------------------------------------------------------------

func loadMemberSlots() *[MemberSlots]sdk.Address {
	ptr := sdk.StateGetObject(memberSlotsKey())
	if ptr == nil || *ptr == "" {
		return &[MemberSlots]sdk.Address{}
	}
	slots, err := DecodeMemberSlots([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode member slots")
	}
	return slots
}

func saveMemberSlots(slots *[MemberSlots]sdk.Address) {
	sdk.StateSetObject(memberSlotsKey(), string(EncodeMemberSlots(slots)))
}

// memberSlotIndex returns the 1-based slot of addr, 0 when absent.
func memberSlotIndex(addr sdk.Address) uint64 {
	return getCount(memberIndexKey(addr))
}

// badgeHeld reports whether addr currently occupies a slot.
func badgeHeld(addr sdk.Address) bool {
	return memberSlotIndex(addr) > 0
}

func occupySlot(slots *[MemberSlots]sdk.Address, idx int, addr sdk.Address) {
	slots[idx] = addr
	saveMemberSlots(slots)
	setCount(memberIndexKey(addr), uint64(idx+1))
	emitBadgeGranted(AddressToString(addr), idx)
}

func vacateSlot(slots *[MemberSlots]sdk.Address, addr sdk.Address) {
	idx := memberSlotIndex(addr)
	if idx == 0 {
		return
	}
	slots[idx-1] = sdk.Address("")
	saveMemberSlots(slots)
	sdk.StateDeleteObject(memberIndexKey(addr))
	emitBadgeRevoked(AddressToString(addr))
}

// updateMembership runs after every balance change for addr and keeps the
// slot array consistent with the rules: zero balance vacates, sitting members
// stay put, empty slots fill first, otherwise the strictly-smaller minimum
// occupant gets evicted. Ties on the minimum go to the lowest scanned index.
func updateMembership(addr sdk.Address) {
	if addr == contractAddress() {
		return
	}
	balance := balanceOf(addr)
	held := memberSlotIndex(addr)

	if balance == 0 {
		if held > 0 {
			slots := loadMemberSlots()
			vacateSlot(slots, addr)
		}
		return
	}
	if held > 0 {
		return
	}

	slots := loadMemberSlots()
	minIdx := -1
	var minBal Amount
	for i := 0; i < MemberSlots; i++ {
		if slots[i] == "" {
			occupySlot(slots, i, addr)
			return
		}
		occBal := balanceOf(slots[i])
		if minIdx == -1 || occBal < minBal {
			minIdx = i
			minBal = occBal
		}
	}
	if balance > minBal {
		vacateSlot(slots, slots[minIdx])
		occupySlot(slots, minIdx, addr)
	}
}

// Chat posts a message on the side channel. Only current badge holders get
// through; the message itself only lives in the event stream.
// Example payload: Chat(strptr("gm"))
//
//go:wasmexport chat
func Chat(payload *string) *string {
	text := unwrapPayload(payload, "message required")
	if len(text) > MaxChatLength {
		abortValidity("message too long")
	}
	caller := getSenderAddress()
	if !badgeHeld(caller) {
		abortAuth("chat requires a membership badge")
	}
	n := getCount(chatCountKey()) + 1
	setCount(chatCountKey(), n)
	emitChat(AddressToString(caller), n, text)
	return strptr("sent")
}
