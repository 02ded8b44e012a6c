package debugger

import (
	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/paint"
)

// encodeFlattenable returns {name, bytes} when binaries are on and
// {description} otherwise.
func encodeFlattenable(e paint.Effect, cfg *encodeConfig) map[string]any {
	if cfg.binaries {
		return map[string]any{
			keyName:  e.TypeName(),
			keyBytes: encodeBytes(flatten.Flatten(e)),
		}
	}
	desc := e.Describe()
	if desc == "" {
		desc = e.TypeName()
	}
	return map[string]any{keyDescription: desc}
}

// effect reads an optional flattened effect. It returns nil when the field
// is absent, carries only a description, names an unregistered type, or
// holds an invalid payload. Only a wrongly shaped field is an error.
func (d *decoder) effect(key string) flatten.Flattenable {
	if !d.has(key) || d.err != nil {
		return nil
	}
	sd := d.sub(d.object(key))
	defer d.join(sd)

	if !sd.has(keyName) {
		Logger().Debug("debugger: effect without binary payload dropped", "field", key)
		return nil
	}
	name := sd.str(keyName)
	data := sd.bytes(keyBytes)
	if sd.err != nil {
		return nil
	}
	f, err := flatten.Unflatten(name, data)
	if err != nil {
		Logger().Warn("debugger: cannot unflatten effect", "field", key, "name", name, "err", err)
		return nil
	}
	return f
}
