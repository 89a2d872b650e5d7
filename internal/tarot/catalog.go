// Package tarot holds the static card catalog used to decorate saved readings.
package tarot

// Card is the display metadata for one tarot card.
type Card struct {
	ID       string
	Name     string
	ImageSrc string
}

const (
	// UnknownCardName is shown when a saved card id is no longer in the catalog.
	UnknownCardName = "알 수 없는 카드"
	// BackImageSrc is the fallback image for unknown cards.
	BackImageSrc = "/images/tarot/back.png"
)

// catalog covers the major arcana. Card display data is resolved here at read
// time and never persisted alongside readings.
var catalog = map[string]Card{
	"major-0":  {ID: "major-0", Name: "광대 (The Fool)", ImageSrc: "/images/tarot/major-0.png"},
	"major-1":  {ID: "major-1", Name: "마법사 (The Magician)", ImageSrc: "/images/tarot/major-1.png"},
	"major-2":  {ID: "major-2", Name: "여사제 (The High Priestess)", ImageSrc: "/images/tarot/major-2.png"},
	"major-3":  {ID: "major-3", Name: "여황제 (The Empress)", ImageSrc: "/images/tarot/major-3.png"},
	"major-4":  {ID: "major-4", Name: "황제 (The Emperor)", ImageSrc: "/images/tarot/major-4.png"},
	"major-5":  {ID: "major-5", Name: "교황 (The Hierophant)", ImageSrc: "/images/tarot/major-5.png"},
	"major-6":  {ID: "major-6", Name: "연인 (The Lovers)", ImageSrc: "/images/tarot/major-6.png"},
	"major-7":  {ID: "major-7", Name: "전차 (The Chariot)", ImageSrc: "/images/tarot/major-7.png"},
	"major-8":  {ID: "major-8", Name: "힘 (Strength)", ImageSrc: "/images/tarot/major-8.png"},
	"major-9":  {ID: "major-9", Name: "은둔자 (The Hermit)", ImageSrc: "/images/tarot/major-9.png"},
	"major-10": {ID: "major-10", Name: "운명의 수레바퀴 (Wheel of Fortune)", ImageSrc: "/images/tarot/major-10.png"},
	"major-11": {ID: "major-11", Name: "정의 (Justice)", ImageSrc: "/images/tarot/major-11.png"},
	"major-12": {ID: "major-12", Name: "매달린 사람 (The Hanged Man)", ImageSrc: "/images/tarot/major-12.png"},
	"major-13": {ID: "major-13", Name: "죽음 (Death)", ImageSrc: "/images/tarot/major-13.png"},
	"major-14": {ID: "major-14", Name: "절제 (Temperance)", ImageSrc: "/images/tarot/major-14.png"},
	"major-15": {ID: "major-15", Name: "악마 (The Devil)", ImageSrc: "/images/tarot/major-15.png"},
	"major-16": {ID: "major-16", Name: "탑 (The Tower)", ImageSrc: "/images/tarot/major-16.png"},
	"major-17": {ID: "major-17", Name: "별 (The Star)", ImageSrc: "/images/tarot/major-17.png"},
	"major-18": {ID: "major-18", Name: "달 (The Moon)", ImageSrc: "/images/tarot/major-18.png"},
	"major-19": {ID: "major-19", Name: "태양 (The Sun)", ImageSrc: "/images/tarot/major-19.png"},
	"major-20": {ID: "major-20", Name: "심판 (Judgement)", ImageSrc: "/images/tarot/major-20.png"},
	"major-21": {ID: "major-21", Name: "세계 (The World)", ImageSrc: "/images/tarot/major-21.png"},
}

// Lookup resolves a card id to its display metadata. A miss degrades to the
// placeholder card rather than failing the read.
func Lookup(id string) Card {
	if c, ok := catalog[id]; ok {
		return c
	}
	return Card{ID: id, Name: UnknownCardName, ImageSrc: BackImageSrc}
}
