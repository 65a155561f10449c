package prompts

// builtins is the default prompt bank. Content packs may override any
// entry via Bank.MergeFile.
var builtins = map[string][]string{
	"not_supported": {
		"That doesn't seem to work here.",
		"Hmm, that's not something you can do.",
		"Nothing happens.",
	},
	"encouragement": {
		"Keep looking around, there's more to find.",
		"Maybe try something else.",
		"Don't give up yet.",
	},
	"not_found_item": {
		"You haven't found anything like that yet.",
		"You don't see that here.",
	},
	"not_found_direction": {
		"There's nothing that way.",
		"You can't go that way.",
	},
	"look_around": {
		"Try looking around first.",
		"Have a look around and see what you find.",
	},
	"which_item": {
		"Which item do you mean?",
		"What would you like to try that on?",
	},
	"which_item_options": {
		"Did you mean %s?",
		"You could try %s.",
	},
	"which_item_defaults": {
		"You could try %s.",
		"How about %s?",
	},
	"which_direction": {
		"Which direction? You can face north, east, south, or west.",
		"Which way would you like to turn?",
	},
	"slot_sorry": {
		"Sorry, I didn't catch that.",
		"I'm not sure what you mean.",
	},
	"slot_goodbye": {
		"Let's pick this up another time. Goodbye!",
		"We'll try again later. Bye for now!",
	},
	"inventory_empty": {
		"Your inventory is empty.",
		"You're not carrying anything yet.",
	},
	"inventory_contents": {
		"You're carrying %s.",
		"In your inventory: %s.",
	},
	"inventory_added": {
		"The %s is now in your inventory.",
		"You pick up the %s.",
	},
	"inventory_duplicate": {
		"You already have the %s.",
		"The %s is already in your inventory.",
	},
	"inventory_removed": {
		"You drop the %s.",
		"The %s is out of your inventory.",
	},
	"item_not_inventory": {
		"You're not carrying the %s.",
		"The %s isn't in your inventory.",
	},
	"cannot_take": {
		"The %s won't budge.",
		"You can't take the %s.",
	},
	"cannot_drop": {
		"You can't drop the %s.",
		"Better hold on to the %s.",
	},
	"need_tool": {
		"You'll need something to do that with.",
		"You don't have the right tool for that.",
	},
	"orientation": {
		"You are now facing %s.",
		"You turn to face %s.",
	},
	"facing": {
		"You are facing %s.",
	},
	"hint": {
		"Here's a hint: %s",
		"Try this: %s",
	},
	"hint_direction": {
		"You haven't explored every direction. Try facing %s.",
		"There's more to see. Have a look %s.",
	},
	"hint_directions": {
		"Something in the room shows the right order of directions.",
		"Look for a clue to the sequence of directions.",
	},
	"hint_colors": {
		"Something in the room shows the right order of the colors.",
		"Look for a clue to the sequence of colors.",
	},
	"hint_items": {
		"Take a closer look at the %s.",
		"The %s might be worth inspecting.",
	},
	"hint_inventory": {
		"You're not carrying anything yet. Maybe something here can be taken.",
		"An empty inventory rarely opens doors. Look for something to collect.",
	},
	"hint_generic": {
		"Look carefully at everything you've found.",
		"Sometimes things work together. Try using one item on another.",
	},
	"hint_turns": {
		"Listen for the clicks. The painting might know the right turns.",
		"Safes like this open with the right sequence of turns.",
	},
	"hint_code": {
		"Four digits. Somebody must have written them down somewhere.",
		"The keypad wants four digits. Look around for numbers.",
	},
	"reward_first": {
		"You earned your first hint! Say 'hint' whenever you want to use one.",
		"That discovery earned you a hint. Ask for a hint when you're stuck.",
	},
	"reward": {
		"Nice find! You earned another hint.",
		"That's worth a hint. Ask when you need it.",
	},
	"turns_continue": {
		"Click.",
		"The dial turns. Keep going.",
	},
	"turns_wrong": {
		"Clunk. The dial resets.",
		"That doesn't sound right. The mechanism resets.",
	},
	"turns_reset_hint": {
		"The safe resets every time you get a turn wrong. Maybe something in the room shows the sequence.",
	},
	"code_obvious": {
		"Come on, nobody uses that code.",
		"Surely it's not that obvious. It isn't.",
	},
	"code_wrong": {
		"The keypad buzzes. Wrong code.",
		"Nothing. That's not the code.",
	},
	"code_wrong_again": {
		"Wrong again. Maybe the digits are hidden somewhere in the room.",
	},
	"question_repeat": {
		"You already tried exactly that.",
		"Same thing again? Try something different.",
	},
	"win": {
		"Congratulations, you escaped!",
		"The door opens. You made it out!",
	},
	"lose": {
		"That was the wrong move. The room has beaten you this time.",
	},
	"restart": {
		"Everything is back where it started. Good luck!",
		"The room resets around you. Try again!",
	},
	"play_again": {
		"Would you like to play again?",
	},
	"tip_inventory": {
		"By the way, say 'inventory' to check what you're carrying.",
	},
}
