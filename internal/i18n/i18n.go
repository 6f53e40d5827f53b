// Package i18n localizes the dashboard chrome. Uzbek is the base locale;
// English and Russian are offered for operators who prefer them. Resource
// field labels live with their screen definitions, not here.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	uz = language.MustParse("uz")
	en = language.English
	ru = language.Russian
)

var matcher = language.NewMatcher([]language.Tag{uz, en, ru})

var messages = catalogBuilder()

func catalogBuilder() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(uz))

	set := func(key, uzMsg, enMsg, ruMsg string) {
		_ = b.SetString(uz, key, uzMsg)
		_ = b.SetString(en, key, enMsg)
		_ = b.SetString(ru, key, ruMsg)
	}

	set("app.title", "Diniy ta'lim boshqaruvi", "Religious education admin", "Администрирование религиозного образования")
	set("nav.home", "Bosh sahifa", "Home", "Главная")
	set("nav.categories", "Kategoriyalar", "Categories", "Категории")
	set("nav.questions", "Savollar", "Questions", "Вопросы")
	set("nav.duas", "Duolar", "Duas", "Дуа")
	set("nav.quran_commentary", "Quron tavsiri", "Quran commentary", "Тафсир Корана")
	set("nav.quran_chapters", "Quron boblari", "Quran chapters", "Главы Корана")
	set("nav.ilm", "Ilm", "Knowledge", "Знания")
	set("nav.bob", "Boblar", "Chapters", "Главы")
	set("nav.hadith", "Hadis sharhlari", "Hadith commentary", "Комментарии к хадисам")
	set("nav.haj", "Haj amallari", "Haj rituals", "Обряды хаджа")
	set("nav.umra", "Umra amallari", "Umra rituals", "Обряды умры")
	set("nav.news", "Yangiliklar", "News", "Новости")
	set("nav.activity", "Faoliyat jurnali", "Activity log", "Журнал действий")

	set("table.search", "Qidirish...", "Search...", "Поиск...")
	set("table.no_results", "Natijalar topilmadi", "No results found", "Результаты не найдены")
	set("table.actions", "Amallar", "Actions", "Действия")
	set("table.prev", "Oldingi", "Prev", "Назад")
	set("table.next", "Keyingi", "Next", "Вперёд")
	set("table.page", "Sahifa %d / %d", "Page %d of %d", "Страница %d из %d")

	set("button.add", "Qo'shish", "Add", "Добавить")
	set("button.save", "Saqlash", "Save", "Сохранить")
	set("button.cancel", "Bekor qilish", "Cancel", "Отмена")
	set("button.close", "Yopish", "Close", "Закрыть")
	set("button.delete", "O'chirish", "Delete", "Удалить")
	set("button.confirm", "Tasdiqlash", "Confirm", "Подтвердить")
	set("button.view", "Ko'rish", "View", "Просмотр")
	set("button.edit", "Tahrirlash", "Edit", "Изменить")
	set("button.login", "Kirish", "Log in", "Войти")
	set("button.logout", "Chiqish", "Log out", "Выйти")
	set("button.upload", "Yuklash", "Upload", "Загрузить")
	set("button.remove", "Olib tashlash", "Remove", "Убрать")
	set("button.clear", "Tozalash", "Clear", "Очистить")

	set("form.required", "%s to'ldirilishi shart", "%s is required", "Поле %s обязательно")
	set("form.select_placeholder", "%s tanlang", "Select %s", "Выберите %s")
	set("form.submitting", "Yuborilmoqda...", "Submitting...", "Отправка...")

	set("confirm.title", "Amalni tasdiqlang", "Confirm Action", "Подтвердите действие")
	set("confirm.message", "Davom etishni xohlaysizmi? Bu amalni ortga qaytarib bo'lmaydi.",
		"Are you sure you want to proceed? This action cannot be undone.",
		"Вы уверены, что хотите продолжить? Это действие нельзя отменить.")

	set("login.title", "Admin kirish", "Admin login", "Вход для администратора")
	set("login.username", "Foydalanuvchi nomi", "Username", "Имя пользователя")
	set("login.password", "Parol", "Password", "Пароль")
	set("login.failed", "Kirish amalga oshmadi", "Login failed", "Не удалось войти")

	set("error.load", "Ro'yxatni yuklashda xatolik yuz berdi", "Failed to load the list", "Не удалось загрузить список")
	set("error.not_found", "Sahifa topilmadi", "Page not found", "Страница не найдена")

	set("activity.actor", "Foydalanuvchi", "Actor", "Пользователь")
	set("activity.action", "Amal", "Action", "Действие")
	set("activity.resource", "Bo'lim", "Resource", "Раздел")
	set("activity.time", "Vaqt", "Time", "Время")

	return b
}

// Printer resolves the closest supported locale for lang and returns a
// printer over the chrome catalog. Unknown or empty values fall back to
// Uzbek.
func Printer(lang string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, lang)
	return message.NewPrinter(tag, message.Catalog(messages))
}
