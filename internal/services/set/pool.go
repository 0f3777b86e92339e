package set

// randomPool is the species drawn from in random mode. Every entry has
// recommended sets in at least one generation.
var randomPool = []string{
	"venusaur", "charizard", "blastoise", "alakazam", "gengar",
	"snorlax", "zapdos", "dragonite", "mewtwo", "tyranitar",
	"skarmory", "blissey", "swampert", "salamence", "metagross",
	"garchomp", "rotom-wash", "ferrothorn", "excadrill", "volcarona",
	"landorus-therian", "greninja", "aegislash", "clefable", "toxapex",
	"mimikyu", "corviknight", "dragapult", "rillaboom", "cinderace",
	"urshifu", "great-tusk", "gholdengo", "kingambit", "iron-valiant",
	"amoonguss", "heatran", "scizor", "weavile", "pelipper",
}
