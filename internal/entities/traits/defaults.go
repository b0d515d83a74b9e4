package traits

// defaultEntries is the shipped weight table. Weight 0 keeps an option available to
// predefined overrides while the unconstrained draw never picks it.
var defaultEntries = []CategoryOptions{
	{
		Category: CategoryAccessory,
		Options: []Option{
			{Name: "Cigar", Weight: 10},
			{Name: "Ciggy", Weight: 5},
			{Name: "Cross", Weight: 7},
			{Name: "Diamond Stud", Weight: 3},
			{Name: "Drool", Weight: 5},
			{Name: "Gold Hoop", Weight: 4},
			{Name: "Gold Stud", Weight: 4},
			{Name: "Joint", Weight: 5},
			{Name: "Long Ciggy", Weight: 8},
			{Name: "Pipe", Weight: 10},
			{Name: "Prison Mask", Weight: 4},
			{Name: "Silver Hoop", Weight: 5},
			{Name: "Silver Stud", Weight: 5},
			{Name: "Flu Mask", Weight: 5},
			{Name: "Flu Mask Bloody", Weight: 5},
			{Name: "Paperclip Earring", Weight: 3},
			{Name: "None", Weight: 25},
		},
	},
	{
		Category: CategoryBackground,
		Options: []Option{
			{Name: "Blue", Weight: 13},
			{Name: "Pastel Green", Weight: 13},
			{Name: "Cool Brown", Weight: 13},
			{Name: "Light Red", Weight: 13},
			{Name: "Magenta", Weight: 13},
			{Name: "Orange", Weight: 13},
			{Name: "Pea Green", Weight: 13},
			{Name: "Pink", Weight: 13},
			{Name: "Dark Teal", Weight: 13},
			{Name: "Forest Green", Weight: 13},
			{Name: "Green", Weight: 13},
			{Name: "Maroon", Weight: 13},
			{Name: "Red", Weight: 12},
			{Name: "Rust Brown", Weight: 12},
			{Name: "Teal", Weight: 12},
			{Name: "Twilight Purple", Weight: 12},
		},
	},
	{
		Category: CategoryBeard,
		Options: []Option{
			{Name: "Big Beard", Weight: 10},
			{Name: "Goatee", Weight: 10},
			{Name: "Moustache", Weight: 5},
			{Name: "Stubble", Weight: 15},
			{Name: "None", Weight: 60},
		},
	},
	{
		Category: CategoryClothes,
		Options: []Option{
			{Name: "Army General", Weight: 75},
			{Name: "Black Fur Coat", Weight: 300},
			{Name: "Black Hoodie", Weight: 250},
			{Name: "Black Tracksuit", Weight: 200},
			{Name: "Black Turtleneck", Weight: 100},
			{Name: "Black Tux", Weight: 50},
			{Name: "Bloody Singlet", Weight: 100},
			{Name: "Blue Hoodie", Weight: 300},
			{Name: "Blue Tux", Weight: 40},
			{Name: "Brown Fur Coat", Weight: 300},
			{Name: "Bulls Jersey", Weight: 250},
			{Name: "Business Suit", Weight: 100},
			{Name: "Celtics Jersey", Weight: 250},
			{Name: "Cloak", Weight: 100},
			{Name: "Daywalker", Weight: 60},
			{Name: "Detective Trenchcoat", Weight: 200},
			{Name: "Flannel", Weight: 100},
			{Name: "Gold Tux", Weight: 20},
			{Name: "Impaler Armor", Weight: 40},
			{Name: "Lakers Jersey", Weight: 250},
			{Name: "Leather Jacket", Weight: 200},
			{Name: "Navy Admiral", Weight: 75},
			{Name: "Old Worn Coat", Weight: 250},
			{Name: "OnlyFangs Shirt", Weight: 160},
			{Name: "Pajamas", Weight: 40},
			{Name: "Prison Uniform", Weight: 40},
			{Name: "Reaver Shroud", Weight: 40},
			{Name: "Red Hoodie", Weight: 300},
			{Name: "Red Tracksuit", Weight: 200},
			{Name: "Red Tux", Weight: 30},
			{Name: "Red Vampire Cloak", Weight: 50},
			{Name: "Sea Captain", Weight: 200},
			{Name: "Slayer", Weight: 200},
			{Name: "Space Governor", Weight: 150},
			{Name: "The Accountant", Weight: 40},
			{Name: "Thriller", Weight: 40},
			{Name: "Turtleneck", Weight: 150},
			{Name: "Vampire Lord", Weight: 20},
			{Name: "Vampire Nobility", Weight: 100},
			{Name: "White Tux", Weight: 80},
			{Name: "Jiangshi", Weight: 20},
			{Name: "Jiangshi Black", Weight: 20},
			{Name: "Karate Gi", Weight: 20},
			{Name: "Roadwarrior", Weight: 50},
			{Name: "OnlyFreddy Shirt", Weight: 0},
			{Name: "Ruffian", Weight: 40},
			{Name: "Striped Suit", Weight: 100},
			{Name: "None", Weight: 200},
		},
	},
	{
		Category: CategoryEyes,
		Options: []Option{
			{Name: "Red Eyes", Weight: 220},
			{Name: "Black", Weight: 120},
			{Name: "Bloodshot", Weight: 80},
			{Name: "Blue Laser", Weight: 35},
			{Name: "Blue", Weight: 220},
			{Name: "BTC", Weight: 1},
			{Name: "Dark", Weight: 120},
			{Name: "Demonic", Weight: 100},
			{Name: "Single Gold Eye", Weight: 60},
			{Name: "Gold Eyes", Weight: 30},
			{Name: "Hypno", Weight: 30},
			{Name: "No Pupils", Weight: 50},
			{Name: "Red Laser", Weight: 15},
		},
	},
	{
		Category: CategoryGlasses,
		Options: []Option{
			{Name: "3D Glasses", Weight: 3},
			{Name: "Anime Hero Sunglasses", Weight: 7},
			{Name: "Blindfold", Weight: 7},
			{Name: "Cool Shades", Weight: 6},
			{Name: "Eye Patch", Weight: 15},
			{Name: "Glasses", Weight: 13},
			{Name: "Holo Shades", Weight: 8},
			{Name: "Monocle", Weight: 5},
			{Name: "Old Fashioned Glasses", Weight: 10},
			{Name: "Pit Viper Cool", Weight: 4},
			{Name: "Pit Viper Hot", Weight: 4},
			{Name: "The Hitman", Weight: 5},
			{Name: "VR Headset", Weight: 2},
			{Name: "None", Weight: 16},
		},
	},
	{
		Category: CategoryHair,
		Options: []Option{
			{Name: "Base", Weight: 20},
			{Name: "Black", Weight: 12},
			{Name: "Blond", Weight: 12},
			{Name: "Blue", Weight: 10},
			{Name: "Brown", Weight: 10},
			{Name: "Gold", Weight: 3},
			{Name: "Green", Weight: 7},
			{Name: "Grey", Weight: 11},
			{Name: "Platinum", Weight: 2},
			{Name: "Purple", Weight: 8},
			{Name: "Red", Weight: 5},
			{Name: "None", Weight: 1},
		},
	},
	{
		Category: CategoryHat,
		Options: []Option{
			{Name: "Black Cap", Weight: 40},
			{Name: "Blue Cap", Weight: 40},
			{Name: "Cat Ears Black", Weight: 30},
			{Name: "Cat Ears White", Weight: 30},
			{Name: "Crooked Fedora", Weight: 30},
			{Name: "Crossbow Bolt", Weight: 20},
			{Name: "Flat Cap", Weight: 50},
			{Name: "Giant Moth", Weight: 20},
			{Name: "Green Beret", Weight: 50},
			{Name: "Halo", Weight: 20},
			{Name: "Headphones", Weight: 30},
			{Name: "Kings Crown", Weight: 30},
			{Name: "Laser Moth", Weight: 10},
			{Name: "Mini Crown", Weight: 30},
			{Name: "Red Beret", Weight: 50},
			{Name: "Red Cap", Weight: 50},
			{Name: "Sea Captain", Weight: 30},
			{Name: "Spinner Cap", Weight: 30},
			{Name: "Stake", Weight: 20},
			{Name: "SVS Cap", Weight: 20},
			{Name: "Tennis Headband Blue", Weight: 50},
			{Name: "Tennis Headband Red", Weight: 50},
			{Name: "Third Eye", Weight: 20},
			{Name: "Witch Hunter", Weight: 50},
			{Name: "Devil Horns", Weight: 2},
			{Name: "Jiangshi Black Talisman", Weight: 0},
			{Name: "Jiangshi Talisman", Weight: 0},
			{Name: "Jiangshi Black", Weight: 4},
			{Name: "Jiangshi", Weight: 4},
			{Name: "Karate", Weight: 5},
			{Name: "Small Bowler Hat", Weight: 10},
			{Name: "None", Weight: 200},
		},
	},
	{
		Category: CategoryBody,
		Options: []Option{
			{Name: "Blue", Weight: 32},
			{Name: "Burning", Weight: 10},
			{Name: "Cyborg", Weight: 12},
			{Name: "Gold", Weight: 1},
			{Name: "Nightcrawler", Weight: 10},
			{Name: "Purple Count", Weight: 15},
			{Name: "Shadow", Weight: 8},
			{Name: "Zombie", Weight: 5},
			{Name: "Sparkle", Weight: 3},
		},
	},
	{
		Category: CategoryHead,
		Options: []Option{
			{Name: "Blue", Weight: 32},
			{Name: "Burning", Weight: 10},
			{Name: "Cyborg", Weight: 12},
			{Name: "Gold", Weight: 1},
			{Name: "Nightcrawler", Weight: 10},
			{Name: "Purple Count", Weight: 15},
			{Name: "Shadow", Weight: 8},
			{Name: "Sparkle", Weight: 3},
			{Name: "Zombie", Weight: 5},
		},
	},
	{
		Category: CategoryMoon,
		Options: []Option{
			{Name: "Blood Moon", Weight: 10},
			{Name: "Moon", Weight: 70},
			{Name: "Sun", Weight: 20},
		},
	},
	{
		Category: CategoryMouth,
		Options: []Option{
			{Name: "Base", Weight: 26},
			{Name: "Black Lipstick", Weight: 6},
			{Name: "Bloody Mouth", Weight: 8},
			{Name: "Diamond Fangs", Weight: 3},
			{Name: "Diamond Grills", Weight: 3},
			{Name: "Disgust", Weight: 5},
			{Name: "Gold Fangs", Weight: 4},
			{Name: "Gold Grills", Weight: 4},
			{Name: "Pierced Tongue", Weight: 5},
			{Name: "Rainbow Grills", Weight: 2},
			{Name: "Red Lipstick", Weight: 10},
			{Name: "Rotten Teeth", Weight: 6},
			{Name: "Single Bloody Tooth", Weight: 6},
			{Name: "Single Diamond Tooth", Weight: 2},
			{Name: "Tongue", Weight: 13},
		},
	},
}

// DefaultTable returns the shipped weight table
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}
