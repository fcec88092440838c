package reminder

import (
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ixteam/teetimes/models"
)

func TestLiveTournaments(t *testing.T) {
	tests := []struct {
		name string
		doc  models.TriggerDoc
		want []LiveTournament
	}{
		{
			name: "orders by tour priority",
			doc: trigger(
				entry("M", "900", "yes"),
				entry("C", "800", "yes"),
				entry("R", "521", "yes"),
				entry("H", "700", "yes"),
				entry("S", "600", "yes"),
			),
			want: []LiveTournament{
				{TourCode: "R", PermID: "521"},
				{TourCode: "S", PermID: "600"},
				{TourCode: "H", PermID: "700"},
				{TourCode: "C", PermID: "800"},
				{TourCode: "M", PermID: "900"},
			},
		},
		{
			name: "skips non-live entries",
			doc: trigger(
				entry("R", "521", "no"),
				entry("S", "600", "yes"),
				entry("R", "522", ""),
			),
			want: []LiveTournament{{TourCode: "S", PermID: "600"}},
		},
		{
			name: "unknown codes sort last in feed order",
			doc: trigger(
				entry("X", "1", "yes"),
				entry("M", "900", "yes"),
				entry("Z", "2", "yes"),
				entry("R", "521", "yes"),
			),
			want: []LiveTournament{
				{TourCode: "R", PermID: "521"},
				{TourCode: "M", PermID: "900"},
				{TourCode: "X", PermID: "1"},
				{TourCode: "Z", PermID: "2"},
			},
		},
		{
			name: "same code keeps feed order",
			doc: trigger(
				entry("R", "521", "yes"),
				entry("R", "522", "yes"),
				entry("R", "523", "yes"),
			),
			want: []LiveTournament{
				{TourCode: "R", PermID: "521"},
				{TourCode: "R", PermID: "522"},
				{TourCode: "R", PermID: "523"},
			},
		},
		{
			name: "nothing live",
			doc:  trigger(entry("R", "521", "no")),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LiveTournaments(&tt.doc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LiveTournaments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriggerDecoding(t *testing.T) {
	raw := `<tours>
		<feed tourcode="R" perm_id="521" live="yes" event_id="1"/>
		<feed tourcode="S" perm_id="600" live="no" event_id="0"/>
	</tours>`

	var doc models.TriggerDoc
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := LiveTournaments(&doc)
	want := []LiveTournament{{TourCode: "R", PermID: "521"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func trigger(entries ...models.TriggerEntry) models.TriggerDoc {
	return models.TriggerDoc{Feeds: entries}
}

func entry(tour, id, live string) models.TriggerEntry {
	return models.TriggerEntry{TourCode: tour, PermID: id, Live: live}
}
