package collection

import "github.com/KirkDiggler/trait-forge/internal/entities/traits"

// Unique is a hand-authored token placed into random slots after generation.
// With a FileName the attributes are the literal metadata of pregenerated art;
// without one they are pinned values handed to the resolver, which fills the rest.
type Unique struct {
	Name       string             `json:"name,omitempty" yaml:"name,omitempty"`
	FileName   string             `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Amount     int                `json:"amount" yaml:"amount"`
	Attributes []traits.Attribute `json:"attributes" yaml:"attributes"`
}

// Pregenerated reports whether the unique ships its own artwork and metadata
func (u Unique) Pregenerated() bool {
	return u.FileName != ""
}

// Slots is the total number of token slots a roster occupies
func Slots(roster []Unique) int {
	var n int
	for _, u := range roster {
		n += u.Amount
	}
	return n
}

// DefaultRoster returns the shipped uniques in placement order
func DefaultRoster() []Unique {
	return []Unique{
		{
			Name:     "Ancient Count",
			FileName: "AncientCount",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Ancient Count"},
			},
		},
		{
			Name:     "Punk Vampire",
			FileName: "PunkVampire",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Punk Vampire"},
			},
		},
		{
			Name:     "Nosferatu",
			FileName: "Nosferatu",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Nosferatu"},
			},
		},
		{
			Name:     "The Impaler",
			FileName: "TheImpaler",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "The Impaler"},
			},
		},
		{
			Name:     "Killer Clown",
			FileName: "KillerClown",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Killer Clown"},
			},
		},
		{
			Name:     "Vampire Lord",
			FileName: "VampireLord",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Vampire Lord"},
			},
		},
		{
			Name:     "Vampire Nun",
			FileName: "VampireNun",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Vampire Nun"},
			},
		},
		{
			Name:     "Vampire Slayer",
			FileName: "VampireSlayer",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Vampire Slayer"},
			},
		},
		{
			Name:     "Bat (1 of 8)",
			FileName: "Bat1",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (2 of 8)",
			FileName: "Bat2",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (3 of 8)",
			FileName: "Bat3",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (4 of 8)",
			FileName: "Bat4",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (5 of 8)",
			FileName: "Bat5",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (6 of 8)",
			FileName: "Bat6",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (7 of 8)",
			FileName: "Bat7",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Name:     "Bat (8 of 8)",
			FileName: "Bat8",
			Amount:   1,
			Attributes: []traits.Attribute{
				{TraitType: "Unique", Value: "Bathead"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "None"},
				{TraitType: "Background", Value: "Pastel Green"},
				{TraitType: "Beard", Value: "None"},
				{TraitType: "Clothes", Value: "OnlyFreddy Shirt"},
				{TraitType: "Eyes", Value: "BTC"},
				{TraitType: "Glasses", Value: "VR Headset"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Hat", Value: "None"},
				{TraitType: "Body", Value: "Gold"},
				{TraitType: "Head", Value: "Gold"},
				{TraitType: "Moon", Value: "Sun"},
				{TraitType: "Mouth", Value: "Single Diamond Tooth"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "None"},
				{TraitType: "Background", Value: "Maroon"},
				{TraitType: "Beard", Value: "None"},
				{TraitType: "Clothes", Value: "Cloak"},
				{TraitType: "Eyes", Value: "Red Eyes"},
				{TraitType: "Glasses", Value: "None"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Hat", Value: "None"},
				{TraitType: "Body", Value: "Blue"},
				{TraitType: "Head", Value: "Blue"},
				{TraitType: "Moon", Value: "Sun"},
				{TraitType: "Mouth", Value: "Base"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Drool"},
				{TraitType: "Background", Value: "Maroon"},
				{TraitType: "Beard", Value: "None"},
				{TraitType: "Clothes", Value: "OnlyFangs Shirt"},
				{TraitType: "Eyes", Value: "Red Eyes"},
				{TraitType: "Glasses", Value: "None"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Hat", Value: "Stake"},
				{TraitType: "Body", Value: "Blue"},
				{TraitType: "Head", Value: "Blue"},
				{TraitType: "Moon", Value: "Moon"},
				{TraitType: "Mouth", Value: "Base"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Cross"},
				{TraitType: "Clothes", Value: "Gold Tux"},
				{TraitType: "Eyes", Value: "Gold Eyes"},
				{TraitType: "Hair", Value: "Gold"},
				{TraitType: "Hat", Value: "Kings Crown"},
				{TraitType: "Body", Value: "Gold"},
				{TraitType: "Head", Value: "Gold"},
				{TraitType: "Moon", Value: "Moon"},
				{TraitType: "Mouth", Value: "Gold Grills"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Cross"},
				{TraitType: "Clothes", Value: "Gold Tux"},
				{TraitType: "Eyes", Value: "Gold Eyes"},
				{TraitType: "Hair", Value: "Gold"},
				{TraitType: "Hat", Value: "Mini Crown"},
				{TraitType: "Body", Value: "Gold"},
				{TraitType: "Head", Value: "Gold"},
				{TraitType: "Moon", Value: "Moon"},
				{TraitType: "Mouth", Value: "Gold Grills"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Slayer"},
				{TraitType: "Hat", Value: "Witch Hunter"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Sea Captain"},
				{TraitType: "Glasses", Value: "Eye Patch"},
				{TraitType: "Hat", Value: "Sea Captain"},
			},
		},
		{
			Amount: 25,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Detective Trenchcoat"},
				{TraitType: "Hat", Value: "Crooked Fedora"},
			},
		},
		{
			Amount: 20,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Army General"},
				{TraitType: "Hat", Value: "Green Beret"},
			},
		},
		{
			Amount: 20,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Army General"},
				{TraitType: "Hat", Value: "Red Beret"},
			},
		},
		{
			Amount: 25,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Black Hoodie"},
				{TraitType: "Hat", Value: "Black Cap"},
			},
		},
		{
			Amount: 25,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Blue Hoodie"},
				{TraitType: "Hat", Value: "Blue Cap"},
			},
		},
		{
			Amount: 25,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Red Hoodie"},
				{TraitType: "Hat", Value: "Red Cap"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Old Worn Coat"},
				{TraitType: "Mouth", Value: "Rotten Teeth"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Navy Admiral"},
				{TraitType: "Hat", Value: "Sea Captain"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Eyes", Value: "Bloodshot"},
				{TraitType: "Body", Value: "Zombie"},
				{TraitType: "Head", Value: "Zombie"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Hair", Value: "Green"},
				{TraitType: "Mouth", Value: "Red Lipstick"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Beard", Value: "Goatee"},
				{TraitType: "Clothes", Value: "The Accountant"},
				{TraitType: "Glasses", Value: "Monocle"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Body", Value: "Purple Count"},
				{TraitType: "Head", Value: "Purple Count"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Prison Mask"},
				{TraitType: "Clothes", Value: "Prison Uniform"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Daywalker"},
				{TraitType: "Glasses", Value: "Cool Shades"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Black Tracksuit"},
				{TraitType: "Hat", Value: "Tennis Headband Blue"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Red Tracksuit"},
				{TraitType: "Hat", Value: "Tennis Headband Red"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Space Governor"},
				{TraitType: "Eyes", Value: "Blue"},
				{TraitType: "Hair", Value: "Grey"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Thriller"},
				{TraitType: "Eyes", Value: "Demonic"},
				{TraitType: "Glasses", Value: "VR Headset"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Body", Value: "Zombie"},
				{TraitType: "Head", Value: "Zombie"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Flannel"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Body", Value: "Nightcrawler"},
				{TraitType: "Head", Value: "Nightcrawler"},
				{TraitType: "Mouth", Value: "Pierced Tongue"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Flannel"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Body", Value: "Nightcrawler"},
				{TraitType: "Head", Value: "Nightcrawler"},
				{TraitType: "Mouth", Value: "Tongue"},
			},
		},
		{
			Amount: 5,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Business Suit"},
				{TraitType: "Hair", Value: "None"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "OnlyFangs Shirt"},
				{TraitType: "Accessory", Value: "Drool"},
			},
		},
		{
			Amount: 15,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Reaver Shroud"},
				{TraitType: "Eyes", Value: "No Pupils"},
				{TraitType: "Hair", Value: "Black"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Eyes", Value: "Black"},
				{TraitType: "Hat", Value: "Devil Horns"},
				{TraitType: "Body", Value: "Shadow"},
				{TraitType: "Head", Value: "Shadow"},
				{TraitType: "Mouth", Value: "Bloody Mouth"},
			},
		},
		{
			Amount: 10,
			Attributes: []traits.Attribute{
				{TraitType: "Eyes", Value: "Demonic"},
				{TraitType: "Hat", Value: "Devil Horns"},
				{TraitType: "Body", Value: "Shadow"},
				{TraitType: "Head", Value: "Shadow"},
				{TraitType: "Mouth", Value: "Bloody Mouth"},
			},
		},
		{
			Amount: 5,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Karate"},
				{TraitType: "Clothes", Value: "Karate Gi"},
			},
		},
		{
			Amount: 3,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Jiangshi Black"},
				{TraitType: "Hat", Value: "Jiangshi Black Talisman"},
			},
		},
		{
			Amount: 5,
			Attributes: []traits.Attribute{
				{TraitType: "Clothes", Value: "Jiangshi"},
				{TraitType: "Hat", Value: "Jiangshi Talisman"},
			},
		},
		{
			Amount: 1,
			Attributes: []traits.Attribute{
				{TraitType: "Accessory", Value: "Cross"},
				{TraitType: "Background", Value: "Maroon"},
				{TraitType: "Beard", Value: "None"},
				{TraitType: "Clothes", Value: "Red Vampire Cloak"},
				{TraitType: "Eyes", Value: "Red Eyes"},
				{TraitType: "Glasses", Value: "Monocle"},
				{TraitType: "Hair", Value: "Black"},
				{TraitType: "Hat", Value: "Kings Crown"},
				{TraitType: "Body", Value: "Gold"},
				{TraitType: "Head", Value: "Gold"},
				{TraitType: "Moon", Value: "Sun"},
				{TraitType: "Mouth", Value: "Gold Grills"},
			},
		},
	}
}
