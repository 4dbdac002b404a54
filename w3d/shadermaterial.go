// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"fmt"

	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

// ShaderMaterialProperty.Type
const (
	PropertyString = 1
	PropertyFloat  = 2
	PropertyVec2   = 3
	PropertyVec3   = 4
	PropertyVec4   = 5
	PropertyLong   = 6
	PropertyBool   = 7
)

// PropertyValue is one of StringValue, FloatValue, Vec2Value, Vec3Value,
// Vec4Value, LongValue or BoolValue.
type PropertyValue interface {
	fmt.Stringer
	propertyValue()
}

type (
	StringValue string
	FloatValue  float32
	Vec2Value   vec.Vec2
	Vec3Value   vec.Vec3
	Vec4Value   vec.Vec4
	LongValue   int32
	BoolValue   bool
)

func (StringValue) propertyValue() {}
func (FloatValue) propertyValue()  {}
func (Vec2Value) propertyValue()   {}
func (Vec3Value) propertyValue()   {}
func (Vec4Value) propertyValue()   {}
func (LongValue) propertyValue()   {}
func (BoolValue) propertyValue()   {}

func (v StringValue) String() string { return string(v) }
func (v FloatValue) String() string  { return fmt.Sprintf("%g", float32(v)) }
func (v Vec2Value) String() string   { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vec3Value) String() string   { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
func (v Vec4Value) String() string   { return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W) }
func (v LongValue) String() string   { return fmt.Sprintf("%d", int32(v)) }
func (v BoolValue) String() string   { return fmt.Sprintf("%t", bool(v)) }

// defaultPropertyValue is used for properties of unknown type.
var defaultPropertyValue = Vec4Value{X: 1, Y: 1, Z: 1, W: 1}

type ShaderMaterialHeader struct {
	Version   uint8
	TypeName  string
	Technique int32
}

type ShaderMaterialProperty struct {
	Type  int32
	Name  string
	Value PropertyValue
}

// RGBA returns color valued properties as floats, alpha defaulting to 1.
func (p *ShaderMaterialProperty) RGBA() (vec.Vec4, bool) {
	switch v := p.Value.(type) {
	case Vec3Value:
		return vec.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}, true
	case Vec4Value:
		return vec.Vec4(v), true
	}
	return vec.Vec4{}, false
}

type ShaderMaterial struct {
	Header     *ShaderMaterialHeader
	Properties []*ShaderMaterialProperty
}

// Property returns the first property called name.
func (s *ShaderMaterial) Property(name string) *ShaderMaterialProperty {
	for _, p := range s.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (d *decoder) readShaderMaterialHeader() (*ShaderMaterialHeader, error) {
	var err error
	h := &ShaderMaterialHeader{}
	if h.Version, err = d.r.ReadUint8(); err != nil {
		return nil, err
	}
	if h.TypeName, err = d.r.ReadLongFixedString(); err != nil {
		return nil, err
	}
	if h.Technique, err = d.r.ReadInt32(); err != nil {
		return nil, err
	}
	return h, nil
}

func (d *decoder) readShaderMaterialProperty(h ChunkHeader) (*ShaderMaterialProperty, error) {
	var err error
	p := &ShaderMaterialProperty{}
	if p.Type, err = d.r.ReadInt32(); err != nil {
		return nil, err
	}
	if _, err = d.r.ReadInt32(); err != nil { // name length, redundant with the terminator
		return nil, err
	}
	if p.Name, err = d.r.ReadString(); err != nil {
		return nil, err
	}
	switch p.Type {
	case PropertyString:
		if _, err = d.r.ReadInt32(); err != nil {
			return nil, err
		}
		var s string
		s, err = d.r.ReadString()
		p.Value = StringValue(s)
	case PropertyFloat:
		var f float32
		f, err = d.r.ReadFloat32()
		p.Value = FloatValue(f)
	case PropertyVec2:
		var v vec.Vec2
		v, err = d.r.ReadVec2()
		p.Value = Vec2Value(v)
	case PropertyVec3:
		var v vec.Vec3
		v, err = d.r.ReadVec3()
		p.Value = Vec3Value(v)
	case PropertyVec4:
		var v vec.Vec4
		v, err = d.r.ReadVec4()
		p.Value = Vec4Value(v)
	case PropertyLong:
		var l int32
		l, err = d.r.ReadInt32()
		p.Value = LongValue(l)
	case PropertyBool:
		var b uint8
		b, err = d.r.ReadUint8()
		p.Value = BoolValue(b != 0)
	default:
		d.warnf(h, "unknown type %d of shader material property %q", p.Type, p.Name)
		p.Value = defaultPropertyValue
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *decoder) readShaderMaterial(end int64) (*ShaderMaterial, error) {
	s := &ShaderMaterial{}
	err := d.walk(end, handlers{
		ChunkShaderMaterialHdr: func(h ChunkHeader) (err error) {
			s.Header, err = d.readShaderMaterialHeader()
			return
		},
		ChunkShaderMaterialProp: func(h ChunkHeader) error {
			p, err := d.readShaderMaterialProperty(h)
			if err != nil {
				return err
			}
			s.Properties = append(s.Properties, p)
			return nil
		},
	})
	return s, err
}

func (d *decoder) readShaderMaterials(end int64) ([]*ShaderMaterial, error) {
	var sms []*ShaderMaterial
	err := d.array(end, ChunkShaderMaterial, func(h ChunkHeader) error {
		sm, err := d.readShaderMaterial(h.End)
		if err != nil {
			return err
		}
		sms = append(sms, sm)
		return nil
	})
	return sms, err
}
