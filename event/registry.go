package event

// typeInfo names an event type and builds its empty payload for decoding
type typeInfo struct {
	name    string
	payload func() any
}

var types = map[EventType]typeInfo{
	EventLevelClear:          {name: "level.clear"},
	EventMissileSpawnRequest: {"missile.spawn", func() any { return &MissileSpawnRequestPayload{} }},
	EventNetDamage:           {"net.damage", func() any { return &NetDamagePayload{} }},
	EventNetActivatePortal:   {"net.portal", func() any { return &NetPortalPayload{} }},
	EventNetSetReflect:       {"net.reflect", func() any { return &NetReflectPayload{} }},
	EventNetSetShield:        {"net.shield.set", func() any { return &NetPlayerPayload{} }},
	EventNetRemoveShield:     {"net.shield.remove", func() any { return &NetPlayerPayload{} }},
	EventNetWarp:             {"net.warp", func() any { return &NetWarpPayload{} }},
	EventNetDisarm:           {"net.disarm", func() any { return &NetDisarmPayload{} }},
	EventCursorRequest:       {"ui.cursor", func() any { return &CursorRequestPayload{} }},
}

var byName = func() map[string]EventType {
	m := make(map[string]EventType, len(types))
	for t, info := range types {
		m[info.name] = t
	}
	return m
}()

func (t EventType) String() string {
	if info, ok := types[t]; ok {
		return info.name
	}
	return "unknown"
}

// ParseEventType resolves a name produced by String
func ParseEventType(name string) (EventType, bool) {
	t, ok := byName[name]
	return t, ok
}

// NewPayload returns a pointer to a zero payload for t, nil for payload-less events
func NewPayload(t EventType) any {
	info := types[t]
	if info.payload == nil {
		return nil
	}
	return info.payload()
}
