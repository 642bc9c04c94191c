package bot

// User-facing texts. The bot speaks Russian to the restaurant staff.
const (
	msgGreeting = `Привет!

Я веду бронирования столиков: записываю новые брони, показываю список на день и оповещаю остальных об изменениях.

Команды: /addreserve, /today, /upcoming, /archive, /ondate, /help`

	msgHelp = `Команды:

/addreserve — записать новую бронь
/today — бронирования на сегодня
/upcoming — все предстоящие бронирования
/archive — старые бронирования
/ondate ДД.ММ.ГГГГ — бронирования на дату
/cancel — прервать текущий диалог

У каждой карточки брони есть кнопки: отметить приход гостей, изменить поля, скопировать или удалить бронь.`

	msgAddStart       = "Добавляем новый резерв. "
	msgAskGuestName   = "Укажите имя гостя."
	msgAskDateTime    = "Укажите дату и время визита в формате: "
	msgAskInfo        = "Предоставьте дополнительную информацию. Количество гостей, номер стола, etc"
	msgConfirmPrompt  = "Вы собираетесь сохранить бронирование:"
	msgSaved          = "Запись успешно сохранена!"
	msgDialogDone     = "Диалог прерван."
	msgDialogBusy     = "Сначала завершите или отмените текущий диалог (/cancel)."
	msgNoActiveDialog = "Сейчас нет активного диалога."

	msgInvalidFormat   = "Неверно введены дата или время!\nПожалуйста используйте следующий формат: "
	msgPastDatetime    = "Ой, какая-то странная дата... Введите актуальную!"
	msgInvalidDate     = "Неверно введена дата!\nПожалуйста используйте следующий формат: "
	msgCardButtonError = "Что-то пошло не так! Вызовите сообщение об этом резерве заново и повторите попытку!"

	msgEditChoice = "Что меняем?"
	msgAskNewName = "Укажите новое имя гостя."
	msgAskNewInfo = "Укажите новую дополнительную информацию."

	msgNotifyNew    = "Появилась новая бронь:"
	msgNotifyEdit   = "Изменение в бронировании:"
	msgNotifyDelete = "Бронирование отменена и удалено из базы данных:"

	msgDeletedMarker = "❌ Бронь отменена и удалена."
	msgNothingFound  = "Ничего не нашлось :("
)

// Reply-keyboard button labels; they route to commands via registry aliases.
const (
	labelNewReserve    = "Новое бронирование"
	labelTodayReserves = "Бронирования на сегодня"
	labelAllReserves   = "Все бронирования"
	labelArchive       = "Старые бронирования"
	labelHelp          = "Справка"

	labelSave   = "Сохранить"
	labelCancel = "Отмена"
)

// Inline-button labels on a reservation card.
const (
	labelVisited = "Гости пришли"
	labelEdit    = "Изменить"
	labelCopy    = "Скопировать"
	labelDelete  = "Удалить бронь"

	labelFieldName     = "Имя гостя"
	labelFieldDateTime = "Дата и время"
	labelFieldInfo     = "Доп. информация"
)
