package apierrors

const (
	MsgInvalidID          = "invalidID"
	MsgInvalidListPayload = "invalidListPayload"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidFilter      = "invalidFilter"
	MsgInvalidPage        = "invalidPage"
	MsgListNotFound       = "listNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgForbidden          = "forbidden"
	MsgNotAuthenticated   = "notAuthenticated"
	MsgInvalidToken       = "invalidToken"

	MsgFailListLists  = "failListLists"
	MsgFailCreateList = "failCreateList"
	MsgFailGetList    = "failGetList"
	MsgFailUpdateList = "failUpdateList"
	MsgFailDeleteList = "failDeleteList"
	MsgFailListTasks  = "failListTasks"
	MsgFailCreateTask = "failCreateTask"
	MsgFailGetTask    = "failGetTask"
	MsgFailUpdateTask = "failUpdateTask"
	MsgFailDeleteTask = "failDeleteTask"

	MsgFieldRequired      = "fieldRequired"
	MsgFieldTooLong       = "fieldTooLong"
	MsgFieldInvalidChoice = "fieldInvalidChoice"
	MsgFieldInvalidDate   = "fieldInvalidDate"
	MsgFieldInvalid       = "fieldInvalid"
)
