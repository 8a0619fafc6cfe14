package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is one independently keyed durable document. The paper state is
// stored as three of these: "metadata", "sections" and "knowledge".
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Record key: metadata, sections, knowledge"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the record was last written"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
