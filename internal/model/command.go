package model

// Command is a directive for the active contestant's turn
type Command string

const (
	// CommandRoll rolls the dice, risking the turn total
	CommandRoll Command = "roll"
	// CommandBank banks the turn total into the overall score
	CommandBank Command = "bank"
	// CommandCheat adds a flat bonus, discarding the turn total
	CommandCheat Command = "cheat"
	// CommandRename changes the active contestant's name
	CommandRename Command = "rename"
	// CommandDifficulty retargets the computer's strategy
	CommandDifficulty Command = "difficulty"
	// CommandRestart resets both scores and starts the match over
	CommandRestart Command = "restart"
	// CommandQuit abandons the match without recording anything
	CommandQuit Command = "quit"
	// CommandHelp is handled at the prompt and never reaches the match
	CommandHelp Command = "help"
)
