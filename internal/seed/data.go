package seed

import "vgm/internal/domain"

type platformSeed struct {
	Name string
	Year int
}

var platforms = []platformSeed{
	{"NES", 1983},
	{"Super Nintendo", 1990},
	{"Nintendo 64", 1996},
	{"GameCube", 2001},
	{"Wii", 2006},
	{"Nintendo Switch", 2017},
	{"PlayStation", 1994},
	{"PlayStation 2", 2000},
	{"PlayStation 3", 2006},
	{"PlayStation 4", 2013},
	{"PlayStation 5", 2020},
	{"Xbox", 2001},
	{"Xbox 360", 2005},
	{"Xbox One", 2013},
	{"Xbox Series X|S", 2020},
	{"PC", 1981},
}

type gameSeed struct {
	Name     string
	Year     int
	Platform string
	Genre    domain.Genre
	Status   domain.Status
	Rating   int // 0 means unrated
}

var games = []gameSeed{
	{"Super Mario Bros.", 1985, "NES", domain.GenreAction, domain.StatusCompleted, 5},
	{"Super Mario Bros. 3", 1988, "NES", domain.GenreAction, domain.StatusCompleted, 5},
	{"Super Mario World", 1990, "Super Nintendo", domain.GenreAction, domain.StatusCompleted, 5},
	{"Super Mario 64", 1996, "Nintendo 64", domain.GenreAction, domain.StatusCompleted, 5},
	{"Super Mario Odyssey", 2017, "Nintendo Switch", domain.GenreAction, domain.StatusPlaying, 4},
	{"God of War", 2018, "PlayStation 4", domain.GenreAction, domain.StatusCompleted, 5},
	{"God of War Ragnarök", 2022, "PlayStation 5", domain.GenreAction, domain.StatusPlaying, 0},
	{"Halo: Combat Evolved", 2001, "Xbox", domain.GenreAction, domain.StatusCompleted, 4},
	{"Halo 3", 2007, "Xbox 360", domain.GenreAction, domain.StatusCompleted, 4},
	{"Halo Infinite", 2021, "Xbox Series X|S", domain.GenreAction, domain.StatusDropped, 2},
	{"The Legend of Zelda: Ocarina of Time", 1998, "Nintendo 64", domain.GenreAventure, domain.StatusCompleted, 5},
	{"The Legend of Zelda: Breath of the Wild", 2017, "Nintendo Switch", domain.GenreAventure, domain.StatusCompleted, 5},
	{"The Legend of Zelda: Tears of the Kingdom", 2023, "Nintendo Switch", domain.GenreAventure, domain.StatusPlaying, 0},
	{"Uncharted 4: A Thief's End", 2016, "PlayStation 4", domain.GenreAventure, domain.StatusCompleted, 4},
	{"Red Dead Redemption 2", 2018, "PlayStation 4", domain.GenreAventure, domain.StatusCompleted, 5},
	{"Assassin's Creed IV: Black Flag", 2013, "Xbox One", domain.GenreAventure, domain.StatusDropped, 3},
	{"Final Fantasy VII", 1997, "PlayStation", domain.GenreRPG, domain.StatusCompleted, 5},
	{"Final Fantasy X", 2001, "PlayStation 2", domain.GenreRPG, domain.StatusCompleted, 4},
	{"Final Fantasy XVI", 2023, "PlayStation 5", domain.GenreRPG, domain.StatusNotStarted, 0},
	{"The Witcher 3: Wild Hunt", 2015, "PlayStation 4", domain.GenreRPG, domain.StatusCompleted, 5},
	{"Elden Ring", 2022, "PlayStation 5", domain.GenreRPG, domain.StatusPlaying, 0},
	{"Baldur's Gate 3", 2023, "PC", domain.GenreRPG, domain.StatusPlaying, 5},
	{"Mass Effect 2", 2010, "Xbox 360", domain.GenreRPG, domain.StatusCompleted, 5},
	{"The Elder Scrolls V: Skyrim", 2011, "Xbox 360", domain.GenreRPG, domain.StatusCompleted, 4},
	{"The Sims 4", 2014, "PC", domain.GenreSimulation, domain.StatusDropped, 2},
	{"Cities: Skylines", 2015, "PC", domain.GenreSimulation, domain.StatusNotStarted, 0},
	{"Animal Crossing: New Horizons", 2020, "Nintendo Switch", domain.GenreSimulation, domain.StatusCompleted, 4},
	{"Stardew Valley", 2016, "PC", domain.GenreSimulation, domain.StatusCompleted, 5},
	{"StarCraft II", 2010, "PC", domain.GenreStrategie, domain.StatusNotStarted, 0},
	{"Civilization VI", 2016, "PC", domain.GenreStrategie, domain.StatusPlaying, 4},
	{"XCOM 2", 2016, "PC", domain.GenreStrategie, domain.StatusCompleted, 4},
	{"Age of Empires IV", 2021, "PC", domain.GenreStrategie, domain.StatusNotStarted, 0},
	{"FIFA 23", 2022, "PlayStation 5", domain.GenreSport, domain.StatusDropped, 2},
	{"NBA 2K24", 2023, "PlayStation 5", domain.GenreSport, domain.StatusNotStarted, 0},
	{"Tony Hawk's Pro Skater 1+2", 2020, "Xbox One", domain.GenreSport, domain.StatusCompleted, 5},
	{"Wii Sports", 2006, "Wii", domain.GenreSport, domain.StatusCompleted, 4},
}
