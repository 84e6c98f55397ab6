package command

// User-facing message texts. Tests match these verbatim, so treat them as
// part of the external interface.
const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageInvalidMemberIndex   = "The member index provided is invalid"
	MessageInvalidPollIndex     = "The poll index provided is invalid"
	MessageInvalidAnswerIndex   = "The answer index provided is invalid"
	MessageInvalidTaskIndex     = "The task index provided is invalid"
	MessageMembersListed        = "%d members listed!"
	MessageNotLoggedIn          = "Please log in first"
)

// Usage lines surfaced inside invalid-format messages.
const (
	AddUsage = "add: Adds a member to the club book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL m/MATRIC_NUMBER [g/GROUP] [t/TAG]... u/USERNAME pw/PASSWORD\n" +
		"Example: add n/John Doe p/98765432 e/johnd@example.com m/A0123456H g/logistics t/friends u/johndoe pw/password"
	EditUsage = "edit: Edits the member identified by the index number used in the last member listing. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [m/MATRIC_NUMBER] [g/GROUP] [t/TAG]...\n" +
		"Example: edit 1 p/91234567 e/johndoe@example.com"
	DeleteUsage = "delete: Deletes the member identified by the index number used in the last member listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"
	FindUsage = "find: Finds all members whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find alice bob charlie"
	SignUpUsage = "signup: Signs up a member to Club Connect. Only works when the club book is empty.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL m/MATRIC_NUMBER [g/GROUP] [t/TAG]... u/USERNAME pw/PASSWORD\n" +
		"Example: signup n/John Doe p/98765432 e/johnd@example.com m/A0123456H u/johndoe pw/password"
	LogInUsage = "login: Logs a member in.\n" +
		"Parameters: u/USERNAME pw/PASSWORD\n" +
		"Example: login u/johndoe pw/password"
	ImportUsage = "import: Imports members from the specified CSV file into Club Connect.\n" +
		"Parameters: FILE_PATH (must be an absolute path to a CSV file)\n" +
		"Example: import /home/john/members.csv"
	ExportUsage = "export: Exports members' information to the specified file. " +
		"The extension picks the format (.csv or .xlsx).\n" +
		"Parameters: FILE_PATH (must be an absolute path)\n" +
		"Example: export /home/john/members.csv"
	AddPollUsage = "addpoll: Adds a poll to the club book.\n" +
		"Parameters: q/QUESTION ans/ANSWER [ans/ANSWER]...\n" +
		"Example: addpoll q/When is our next meeting? ans/Monday ans/Friday"
	DeletePollUsage = "deletepoll: Deletes the poll identified by the index number used in the last poll listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: deletepoll 1"
	VoteUsage = "vote: Votes in the poll identified by the index number used in the last poll listing.\n" +
		"Parameters: POLL_INDEX (must be a positive integer) ANSWER_INDEX (must be a positive integer)\n" +
		"Example: vote 1 2"
	AddTaskUsage = "addtask: Adds a task assigned to yourself.\n" +
		"Parameters: d/DESCRIPTION dt/DATE (dd/mm/yyyy) ti/TIME (hh:mm)\n" +
		"Example: addtask d/Buy banners dt/02/04/2026 ti/14:00"
	DeleteTaskUsage = "deletetask: Deletes the task identified by the index number used in the last task listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: deletetask 1"
	RemoveGroupUsage = "removegroup: Removes a group; its members move to the mandatory group.\n" +
		"Parameters: g/GROUP\n" +
		"Example: removegroup g/logistics"
	DeleteTagUsage = "deletetag: Deletes a tag from all members of the club book.\n" +
		"Parameters: t/TAG\n" +
		"Example: deletetag t/friends"
	EmailUsage = "email: Sends an email to all members of a group or a tag.\n" +
		"Parameters: g/GROUP or t/TAG [s/SUBJECT] [b/BODY]\n" +
		"Example: email g/logistics s/Meeting b/See you on Friday"
	ChangePicUsage = "changepic: Changes your profile photo.\n" +
		"Parameters: pic/PATH (must be an absolute path to the photo)\n" +
		"Example: changepic pic//home/john/photo.png"
)
